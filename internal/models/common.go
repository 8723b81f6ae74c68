// Package models defines the parameter records, results and chart data
// shared by the calculators and the dashboard.
package models

import (
	"errors"
	"fmt"
)

// Diagnostic errors reported instead of numeric results.
var (
	// ErrInvalidParameter is returned when an input violates its bounds.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnstableQueue is returned when the arrival rate is not below the service rate.
	ErrUnstableQueue = errors.New("unstable system: arrival rate must be less than service rate")

	// ErrNoBreakEven is returned when price does not exceed variable cost.
	ErrNoBreakEven = errors.New("no break-even point: price must exceed variable cost")

	// ErrInfeasible is returned when the production program has no feasible point.
	ErrInfeasible = errors.New("production program is infeasible")

	// ErrUnbounded is returned when the production objective has no finite optimum.
	ErrUnbounded = errors.New("production program is unbounded")
)

// ValidationError describes a single out-of-bounds parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

// requirePositive appends a ValidationError when v is not strictly positive.
func requirePositive(errs []error, field string, v float64) []error {
	if !(v > 0) {
		errs = append(errs, &ValidationError{Field: field, Reason: "must be greater than 0"})
	}
	return errs
}

// requireNonNegative appends a ValidationError when v is negative or NaN.
func requireNonNegative(errs []error, field string, v float64) []error {
	if !(v >= 0) {
		errs = append(errs, &ValidationError{Field: field, Reason: "must not be negative"})
	}
	return errs
}

// Mode identifies one of the dashboard calculators.
type Mode string

const (
	ModeQueue      Mode = "queue"
	ModeEOQ        Mode = "eoq"
	ModeProduction Mode = "production"
	ModeBreakEven  Mode = "breakeven"
)

// Modes lists the calculators in selector order.
func Modes() []Mode {
	return []Mode{ModeQueue, ModeEOQ, ModeProduction, ModeBreakEven}
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeQueue:
		return "M/M/1 Queue"
	case ModeEOQ:
		return "EOQ Inventory"
	case ModeProduction:
		return "Production Optimizer"
	case ModeBreakEven:
		return "Break-Even Point"
	default:
		return string(m)
	}
}

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	switch s {
	case "mm1", "queueing":
		return ModeQueue, nil
	case "inventory":
		return ModeEOQ, nil
	case "bep":
		return ModeBreakEven, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}
