package headless

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ordash/ordash/internal/config"
	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/breakeven"
	"github.com/ordash/ordash/internal/services/inventory"
	"github.com/ordash/ordash/internal/services/production"
	"github.com/ordash/ordash/internal/services/queueing"
)

// diagnostics are the calculator outcomes reported instead of results.
var diagnostics = []error{
	models.ErrInvalidParameter,
	models.ErrUnstableQueue,
	models.ErrNoBreakEven,
	models.ErrInfeasible,
	models.ErrUnbounded,
}

// Run evaluates mode with the parameters in cfg and writes the report to w.
// A diagnostic is written like any report and then returned as a
// *DiagnosticError.
func Run(w io.Writer, cfg *config.Config, mode models.Mode, format Format, logger *slog.Logger) error {
	report, err := Evaluate(cfg, mode, logger)
	if report == nil {
		return err
	}
	if werr := report.Write(w, format); werr != nil {
		return werr
	}
	return err
}

// Evaluate computes the report for one mode. The report is nil only when
// the evaluation itself failed.
func Evaluate(cfg *config.Config, mode models.Mode, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		report *Report
		err    error
	)
	switch mode {
	case models.ModeQueue:
		report, err = evaluateQueue(cfg, logger)
	case models.ModeEOQ:
		report, err = evaluateEOQ(cfg, logger)
	case models.ModeProduction:
		report, err = evaluateProduction(cfg, logger)
	case models.ModeBreakEven:
		report, err = evaluateBreakEven(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	if report == nil {
		return nil, fmt.Errorf("evaluating %s: %w", mode, err)
	}
	report.Mode = mode
	report.Title = mode.Title()
	report.Currency = cfg.Display.Currency

	if err == nil {
		return report, nil
	}
	for _, d := range diagnostics {
		if errors.Is(err, d) {
			report.Results = nil
			report.Diagnostic = err.Error()
			return report, &DiagnosticError{Mode: mode, Err: err}
		}
	}
	return nil, fmt.Errorf("evaluating %s: %w", mode, err)
}

func evaluateQueue(cfg *config.Config, logger *slog.Logger) (*Report, error) {
	p := cfg.Queueing.QueueParams()
	r := &Report{Inputs: []Value{
		{Key: "arrival_rate", Label: "Arrival rate λ", Number: p.ArrivalRate, Decimals: 2, Unit: "/h"},
		{Key: "service_rate", Label: "Service rate μ", Number: p.ServiceRate, Decimals: 2, Unit: "/h"},
	}}

	m, err := queueing.NewService(cfg.Queueing.CurvePoints, logger).Evaluate(p)
	if err != nil {
		return r, err
	}
	r.Results = []Value{
		{Key: "rho", Label: "Utilization ρ", Number: m.Rho, Decimals: 2},
		{Key: "l", Label: "Customers in system L", Number: m.L, Decimals: 2},
		{Key: "lq", Label: "Customers in queue Lq", Number: m.Lq, Decimals: 2},
		{Key: "w", Label: "Time in system W", Number: m.W, Decimals: 2, Unit: "h"},
		{Key: "wq", Label: "Wait in queue Wq", Number: m.Wq, Decimals: 2, Unit: "h"},
	}
	return r, nil
}

func evaluateEOQ(cfg *config.Config, logger *slog.Logger) (*Report, error) {
	p := cfg.Inventory.EOQParams()
	unit := cfg.Display.UnitLabel
	r := &Report{Inputs: []Value{
		{Key: "demand", Label: "Demand per period", Number: p.Demand, Decimals: 2, Unit: unit},
		{Key: "order_cost", Label: "Cost per order", Number: p.OrderCost, Decimals: 2, Money: true},
		{Key: "holding_cost", Label: "Holding cost per unit", Number: p.HoldingCost, Decimals: 2, Money: true},
	}}

	res, err := inventory.NewService(cfg.Inventory.SweepPoints, logger).Evaluate(p)
	if err != nil {
		return r, err
	}
	r.Results = []Value{
		{Key: "quantity", Label: "Optimal order quantity", Number: res.Quantity, Decimals: 2, Unit: unit},
		{Key: "orders_per_period", Label: "Orders per period", Number: res.OrdersPerPeriod, Decimals: 2},
		{Key: "ordering_cost", Label: "Ordering cost", Number: res.OrderingCost, Decimals: 2, Money: true},
		{Key: "holding_cost", Label: "Holding cost", Number: res.HoldingCost, Decimals: 2, Money: true},
		{Key: "total_cost", Label: "Minimum total cost", Number: res.TotalCost, Decimals: 2, Money: true},
	}
	return r, nil
}

func evaluateProduction(cfg *config.Config, logger *slog.Logger) (*Report, error) {
	solver, err := production.NewSolver(cfg.Production.Solver)
	if err != nil {
		return nil, err
	}

	p := cfg.Production.ProductionParams()
	unit := cfg.Display.UnitLabel
	premium, medium := p.Profit.Margins()
	r := &Report{
		Solver: solver.Name(),
		Inputs: []Value{
			{Key: "total_supply", Label: "Raw material available", Number: p.TotalSupply, Decimals: 2, Unit: unit},
			{Key: "premium_consumption", Label: "Raw material per premium", Number: p.PremiumConsumption, Decimals: 2},
			{Key: "medium_consumption", Label: "Raw material per medium", Number: p.MediumConsumption, Decimals: 2},
			{Key: "min_premium_share", Label: "Minimum premium share", Number: p.MinPremiumShare, Decimals: 2},
			{Key: "premium_profit", Label: "Profit per premium unit", Number: premium, Decimals: 2, Money: true},
			{Key: "medium_profit", Label: "Profit per medium unit", Number: medium, Decimals: 2, Money: true},
		},
	}

	plan, err := production.NewService(solver, logger).Optimize(p)
	if err != nil {
		return r, err
	}
	r.Results = []Value{
		{Key: "premium", Label: "Premium output", Number: plan.Premium, Decimals: 2, Unit: unit},
		{Key: "medium", Label: "Medium output", Number: plan.Medium, Decimals: 2, Unit: unit},
		{Key: "profit", Label: "Maximum profit", Number: plan.Profit, Decimals: 2, Money: true},
		{Key: "min_premium", Label: "Minimum premium output", Number: plan.MinPremium, Decimals: 2, Unit: unit},
		{Key: "supply_used", Label: "Raw material used", Number: plan.SupplyUsed, Decimals: 2, Unit: unit},
	}
	return r, nil
}

func evaluateBreakEven(cfg *config.Config, logger *slog.Logger) (*Report, error) {
	p := cfg.BreakEven.BreakEvenParams()
	r := &Report{Inputs: []Value{
		{Key: "fixed_cost", Label: "Fixed cost", Number: p.FixedCost, Money: true},
		{Key: "variable_cost", Label: "Variable cost per unit", Number: p.VariableCost, Money: true},
		{Key: "price", Label: "Price per unit", Number: p.Price, Money: true},
	}}

	res, err := breakeven.NewService(cfg.BreakEven.Rounding, cfg.BreakEven.CurvePoints, logger).Evaluate(p)
	if err != nil {
		return r, err
	}
	r.Results = []Value{
		{Key: "units", Label: "Units to sell (" + string(res.Rounding) + ")", Number: res.RoundedUnits},
		{Key: "exact_units", Label: "Exact break-even volume", Number: res.Units, Decimals: 2},
		{Key: "margin", Label: "Contribution margin", Number: res.Margin, Money: true},
		{Key: "revenue", Label: "Revenue at break-even", Number: res.Revenue, Money: true},
		{Key: "profit_at_units", Label: "Profit at units to sell", Number: breakeven.ProfitAt(p, res.RoundedUnits), Money: true},
	}
	return r, nil
}
