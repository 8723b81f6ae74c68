// Package production optimizes the output mix of two products sharing one
// raw-material supply.
package production

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/util"
)

// Labels used on the bar chart and in summaries.
const (
	PremiumLabel = "Premium"
	MediumLabel  = "Medium"
)

// Service solves the production program with a configurable Solver.
type Service struct {
	solver Solver
	logger *slog.Logger
}

// NewService creates a production service. A nil solver selects the
// simplex solver; a nil logger selects slog.Default().
func NewService(solver Solver, logger *slog.Logger) *Service {
	if solver == nil {
		solver = SimplexSolver{Tolerance: defaultTolerance}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{solver: solver, logger: logger}
}

// SolverName returns the name of the configured solver.
func (s *Service) SolverName() string {
	return s.solver.Name()
}

// BuildProgram formulates
//
//	maximize   πp·x + πm·y
//	subject to cp·x + cm·y <= supply
//	           x >= share·supply/cp
//	           x, y >= 0
//
// with the lower bound on x written as -cp·x <= -share·supply, so that at
// share 1 the bound and the supply row meet at the same point.
func BuildProgram(p models.ProductionParams) Program {
	premium, medium := p.Profit.Margins()
	return Program{
		Objective: []float64{premium, medium},
		Constraints: [][]float64{
			{p.PremiumConsumption, p.MediumConsumption},
			{-p.PremiumConsumption, 0},
		},
		Bounds: []float64{p.TotalSupply, -p.MinPremiumShare * p.TotalSupply},
	}
}

// Optimize returns the profit-maximizing plan. Infeasible and unbounded
// programs return models.ErrInfeasible and models.ErrUnbounded.
func (s *Service) Optimize(p models.ProductionParams) (*models.ProductionPlan, error) {
	id := util.NewID()
	if err := p.Validate(); err != nil {
		s.logger.Info("production optimization rejected", "evaluation_id", id, "error", err)
		return nil, err
	}

	prog := BuildProgram(p)
	x, err := s.solver.Maximize(prog)
	if err != nil {
		if errors.Is(err, models.ErrInfeasible) || errors.Is(err, models.ErrUnbounded) {
			s.logger.Info("production program has no optimum",
				"evaluation_id", id,
				"solver", s.solver.Name(),
				"error", err,
			)
			return nil, err
		}
		return nil, fmt.Errorf("solving production program: %w", err)
	}

	premium, medium := p.Profit.Margins()
	plan := &models.ProductionPlan{
		Premium:       x[0],
		Medium:        x[1],
		Profit:        prog.Value(x),
		PremiumProfit: premium,
		MediumProfit:  medium,
		MinPremium:    p.MinPremium(),
		SupplyUsed:    p.PremiumConsumption*x[0] + p.MediumConsumption*x[1],
		Solver:        s.solver.Name(),
	}

	s.logger.Debug("production optimized",
		"evaluation_id", id,
		"solver", plan.Solver,
		"profit_model", string(p.Profit.Kind()),
		"premium", plan.Premium,
		"medium", plan.Medium,
		"profit", plan.Profit,
	)
	return plan, nil
}

// Bars returns the two production quantities as a bar chart.
func Bars(plan *models.ProductionPlan) *models.BarChart {
	if plan == nil {
		return nil
	}
	return &models.BarChart{
		Title:  "Production comparison",
		YLabel: "quantity",
		Bars: []models.Bar{
			{Label: PremiumLabel, Value: plan.Premium},
			{Label: MediumLabel, Value: plan.Medium},
		},
	}
}
