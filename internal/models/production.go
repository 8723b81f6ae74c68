package models

import (
	"errors"
	"fmt"
)

// ProfitModel yields the per-unit profit of each product.
type ProfitModel interface {
	// Margins returns the per-unit profit of the premium and medium product.
	Margins() (premium, medium float64)
	// Kind names the model for display and logging.
	Kind() ProfitKind
}

// ProfitKind names a ProfitModel implementation.
type ProfitKind string

const (
	ProfitFixed          ProfitKind = "fixed"
	ProfitPriceMinusCost ProfitKind = "price_minus_cost"
)

// ParseProfitKind converts a string into a ProfitKind.
// An empty string selects ProfitFixed.
func ParseProfitKind(s string) (ProfitKind, error) {
	switch ProfitKind(s) {
	case "":
		return ProfitFixed, nil
	case ProfitFixed, ProfitPriceMinusCost:
		return ProfitKind(s), nil
	}
	return "", fmt.Errorf("unknown profit model %q", s)
}

// FixedProfit uses constant per-unit profits.
type FixedProfit struct {
	Premium float64
	Medium  float64
}

// Margins implements ProfitModel.
func (f FixedProfit) Margins() (float64, float64) {
	return f.Premium, f.Medium
}

// Kind implements ProfitModel.
func (FixedProfit) Kind() ProfitKind {
	return ProfitFixed
}

// PriceMinusCost derives each product's profit from its sell price and cost.
type PriceMinusCost struct {
	PremiumPrice float64
	PremiumCost  float64
	MediumPrice  float64
	MediumCost   float64
}

// Margins implements ProfitModel.
func (p PriceMinusCost) Margins() (float64, float64) {
	return p.PremiumPrice - p.PremiumCost, p.MediumPrice - p.MediumCost
}

// Kind implements ProfitModel.
func (PriceMinusCost) Kind() ProfitKind {
	return ProfitPriceMinusCost
}

// ProductionParams holds the inputs of the two-product production program.
type ProductionParams struct {
	TotalSupply        float64 // raw material available
	PremiumConsumption float64 // raw material per unit of premium product
	MediumConsumption  float64 // raw material per unit of medium product
	MinPremiumShare    float64 // share of TotalSupply reserved for premium output
	Profit             ProfitModel
}

// Validate checks the bounds of every input.
// Consumption coefficients are used as divisors and must be positive.
func (p ProductionParams) Validate() error {
	var errs []error
	errs = requireNonNegative(errs, "total supply", p.TotalSupply)
	errs = requirePositive(errs, "premium consumption", p.PremiumConsumption)
	errs = requirePositive(errs, "medium consumption", p.MediumConsumption)
	errs = requireNonNegative(errs, "minimum premium share", p.MinPremiumShare)
	if p.Profit == nil {
		errs = append(errs, &ValidationError{Field: "profit model", Reason: "is required"})
	}
	return errors.Join(errs...)
}

// MinPremium returns the lower bound on premium output.
func (p ProductionParams) MinPremium() float64 {
	return p.MinPremiumShare * p.TotalSupply / p.PremiumConsumption
}

// ProductionPlan is an optimal solution of the production program.
type ProductionPlan struct {
	Premium       float64
	Medium        float64
	Profit        float64
	PremiumProfit float64 // per unit
	MediumProfit  float64 // per unit
	MinPremium    float64
	SupplyUsed    float64
	Solver        string
}
