// Package inventory evaluates the Economic Order Quantity model.
package inventory

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/util"
)

const (
	// DefaultSweepPoints is the number of order quantities sampled by CostCurve.
	DefaultSweepPoints = 500

	// sweepStart is the smallest order quantity plotted when demand allows it.
	sweepStart = 100.0
)

// Service evaluates EOQ inventory policies.
type Service struct {
	sweepPoints int
	logger      *slog.Logger
}

// NewService creates an inventory service. A sweepPoints below 2 selects
// DefaultSweepPoints; a nil logger selects slog.Default().
func NewService(sweepPoints int, logger *slog.Logger) *Service {
	if sweepPoints < 2 {
		sweepPoints = DefaultSweepPoints
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sweepPoints: sweepPoints, logger: logger}
}

// Evaluate computes EOQ = sqrt(2DS/H) and the costs at that quantity.
func (s *Service) Evaluate(p models.EOQParams) (*models.EOQResult, error) {
	id := util.NewID()
	if err := p.Validate(); err != nil {
		s.logger.Info("eoq evaluation rejected", "evaluation_id", id, "error", err)
		return nil, err
	}

	q := math.Sqrt(2 * p.Demand * p.OrderCost / p.HoldingCost)
	ordering, holding := Costs(p, q)

	s.logger.Debug("eoq evaluated",
		"evaluation_id", id,
		"demand", p.Demand,
		"order_cost", p.OrderCost,
		"holding_cost", p.HoldingCost,
		"eoq", q,
	)

	return &models.EOQResult{
		Quantity:        q,
		OrderingCost:    ordering,
		HoldingCost:     holding,
		TotalCost:       ordering + holding,
		OrdersPerPeriod: p.Demand / q,
	}, nil
}

// Costs returns the ordering cost (D/Q)·S and holding cost (Q/2)·H of
// ordering q units at a time.
func Costs(p models.EOQParams, q float64) (ordering, holding float64) {
	return p.Demand / q * p.OrderCost, q / 2 * p.HoldingCost
}

// TotalCost returns ordering plus holding cost at quantity q.
func TotalCost(p models.EOQParams, q float64) float64 {
	ordering, holding := Costs(p, q)
	return ordering + holding
}

// CostCurve plots ordering, holding and total cost over [100, 2D] with a
// marker at the EOQ. When 2D does not exceed 100 the sweep starts at D.
func (s *Service) CostCurve(p models.EOQParams, result *models.EOQResult) (*models.Chart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if result == nil {
		var err error
		if result, err = s.Evaluate(p); err != nil {
			return nil, err
		}
	}

	lo, hi := sweepStart, 2*p.Demand
	if hi <= lo {
		lo = p.Demand
	}

	qs := floats.Span(make([]float64, s.sweepPoints), lo, hi)
	ordering := make([]float64, len(qs))
	holding := make([]float64, len(qs))
	total := make([]float64, len(qs))
	for i, q := range qs {
		ordering[i], holding[i] = Costs(p, q)
		total[i] = ordering[i] + holding[i]
	}

	return &models.Chart{
		Title:  "EOQ cost vs order quantity",
		XLabel: "order quantity",
		YLabel: "cost",
		Series: []models.Series{
			{Name: "Ordering cost", X: qs, Y: ordering},
			{Name: "Holding cost", X: qs, Y: holding},
			{Name: "Total cost", X: qs, Y: total},
		},
		Markers: []models.Marker{
			{Label: fmt.Sprintf("EOQ ≈ %.0f", result.Quantity), X: result.Quantity},
		},
	}, nil
}
