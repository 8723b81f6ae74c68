// Package breakeven computes the sales volume at which revenue covers cost.
package breakeven

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/util"
)

// DefaultCurvePoints is the number of volumes sampled by Curve.
const DefaultCurvePoints = 200

// emptyRangeUnits is the plotted range when the break-even volume is zero.
const emptyRangeUnits = 100.0

// Service evaluates break-even points.
type Service struct {
	rounding    models.RoundingMode
	curvePoints int
	logger      *slog.Logger
}

// NewService creates a break-even service reporting units with the given
// rounding mode.
func NewService(rounding models.RoundingMode, curvePoints int, logger *slog.Logger) *Service {
	if rounding == "" {
		rounding = models.RoundCeil
	}
	if curvePoints < 2 {
		curvePoints = DefaultCurvePoints
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rounding: rounding, curvePoints: curvePoints, logger: logger}
}

// Rounding returns the reporting rounding mode.
func (s *Service) Rounding() models.RoundingMode {
	return s.rounding
}

// Evaluate computes F/(p-v). When p <= v it returns models.ErrNoBreakEven.
func (s *Service) Evaluate(p models.BreakEvenParams) (*models.BreakEvenResult, error) {
	id := util.NewID()
	if err := p.Validate(); err != nil {
		s.logger.Info("break-even evaluation rejected", "evaluation_id", id, "error", err)
		return nil, err
	}

	units := p.FixedCost / p.Margin()

	s.logger.Debug("break-even evaluated",
		"evaluation_id", id,
		"fixed_cost", p.FixedCost,
		"variable_cost", p.VariableCost,
		"price", p.Price,
		"units", units,
	)

	return &models.BreakEvenResult{
		Units:        units,
		RoundedUnits: s.rounding.Apply(units),
		Rounding:     s.rounding,
		Margin:       p.Margin(),
		Revenue:      p.Price * units,
	}, nil
}

// ProfitAt returns revenue minus total cost at the given volume.
func ProfitAt(p models.BreakEvenParams, units float64) float64 {
	return p.Price*units - (p.FixedCost + p.VariableCost*units)
}

// Curve plots total cost and total revenue over [0, 2×break-even] using the
// unrounded break-even volume, with a marker at the break-even point.
func (s *Service) Curve(p models.BreakEvenParams, result *models.BreakEvenResult) (*models.Chart, error) {
	if result == nil {
		var err error
		if result, err = s.Evaluate(p); err != nil {
			return nil, err
		}
	}

	hi := 2 * result.Units
	if hi <= 0 {
		hi = emptyRangeUnits
	}

	units := floats.Span(make([]float64, s.curvePoints), 0, hi)
	cost := make([]float64, len(units))
	revenue := make([]float64, len(units))
	for i, u := range units {
		cost[i] = p.FixedCost + p.VariableCost*u
		revenue[i] = p.Price * u
	}

	return &models.Chart{
		Title:  "Break-even analysis",
		XLabel: "units",
		YLabel: "amount",
		Series: []models.Series{
			{Name: "Total cost", X: units, Y: cost},
			{Name: "Total revenue", X: units, Y: revenue},
		},
		Markers: []models.Marker{
			{Label: fmt.Sprintf("BEP ≈ %.0f units", result.RoundedUnits), X: result.Units},
		},
	}, nil
}
