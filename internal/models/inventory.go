package models

import "errors"

// EOQParams holds the inputs of the Economic Order Quantity model.
type EOQParams struct {
	Demand      float64 // D, units per period
	OrderCost   float64 // S, cost per order
	HoldingCost float64 // H, cost per unit per period
}

// Validate checks that every input is strictly positive.
func (p EOQParams) Validate() error {
	var errs []error
	errs = requirePositive(errs, "demand", p.Demand)
	errs = requirePositive(errs, "order cost", p.OrderCost)
	errs = requirePositive(errs, "holding cost", p.HoldingCost)
	return errors.Join(errs...)
}

// EOQResult is the optimal order size and the costs at that size.
type EOQResult struct {
	Quantity        float64
	OrderingCost    float64
	HoldingCost     float64
	TotalCost       float64
	OrdersPerPeriod float64
}
