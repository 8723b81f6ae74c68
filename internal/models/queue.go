package models

import "errors"

// QueueParams holds the inputs of an M/M/1 queue.
type QueueParams struct {
	ArrivalRate float64 // λ, customers per time unit
	ServiceRate float64 // μ, customers per time unit
}

// Validate checks positivity and stability.
// Stability is reported as ErrUnstableQueue so callers can tell it apart
// from a malformed input.
func (p QueueParams) Validate() error {
	var errs []error
	errs = requirePositive(errs, "arrival rate", p.ArrivalRate)
	errs = requirePositive(errs, "service rate", p.ServiceRate)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if p.ArrivalRate >= p.ServiceRate {
		return ErrUnstableQueue
	}
	return nil
}

// QueueMetrics are the steady-state measures of a stable M/M/1 queue.
type QueueMetrics struct {
	Rho float64 // utilization
	L   float64 // expected number in system
	Lq  float64 // expected number in queue
	W   float64 // expected time in system
	Wq  float64 // expected wait in queue
}
