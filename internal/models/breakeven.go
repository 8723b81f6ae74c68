package models

import (
	"errors"
	"fmt"
	"math"
)

// BreakEvenParams holds the inputs of the break-even calculation.
type BreakEvenParams struct {
	FixedCost    float64
	VariableCost float64 // per unit
	Price        float64 // per unit
}

// Validate checks non-negativity and that a break-even point exists.
func (p BreakEvenParams) Validate() error {
	var errs []error
	errs = requireNonNegative(errs, "fixed cost", p.FixedCost)
	errs = requireNonNegative(errs, "variable cost", p.VariableCost)
	errs = requireNonNegative(errs, "price", p.Price)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if p.Price <= p.VariableCost {
		return ErrNoBreakEven
	}
	return nil
}

// Margin returns the contribution margin per unit.
func (p BreakEvenParams) Margin() float64 {
	return p.Price - p.VariableCost
}

// RoundingMode controls how the break-even unit count is reported.
type RoundingMode string

const (
	// RoundCeil reports the smallest whole count that does not lose money.
	RoundCeil RoundingMode = "ceil"
	// RoundFloor truncates, matching integer conversion.
	RoundFloor RoundingMode = "floor"
	// RoundNearest rounds half away from zero.
	RoundNearest RoundingMode = "nearest"
)

// ParseRoundingMode converts a string into a RoundingMode.
// An empty string selects RoundCeil.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch RoundingMode(s) {
	case "":
		return RoundCeil, nil
	case RoundCeil, RoundFloor, RoundNearest:
		return RoundingMode(s), nil
	}
	return "", fmt.Errorf("unknown rounding mode %q", s)
}

// Apply rounds v according to the mode.
func (m RoundingMode) Apply(v float64) float64 {
	switch m {
	case RoundFloor:
		return math.Floor(v)
	case RoundNearest:
		return math.Round(v)
	default:
		return math.Ceil(v)
	}
}

// BreakEvenResult is the sales volume at which revenue equals cost.
type BreakEvenResult struct {
	Units        float64 // unrounded F/(p-v)
	RoundedUnits float64
	Rounding     RoundingMode
	Margin       float64
	Revenue      float64 // revenue at the unrounded break-even volume
}
