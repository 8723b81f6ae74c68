// Package queueing evaluates the steady state of an M/M/1 queue.
package queueing

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/util"
)

// DefaultCurvePoints is the number of arrival rates sampled by Curve.
const DefaultCurvePoints = 100

// Service evaluates M/M/1 queues.
type Service struct {
	curvePoints int
	logger      *slog.Logger
}

// NewService creates a queueing service. A non-positive curvePoints selects
// DefaultCurvePoints; a nil logger selects slog.Default().
func NewService(curvePoints int, logger *slog.Logger) *Service {
	if curvePoints < 2 {
		curvePoints = DefaultCurvePoints
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{curvePoints: curvePoints, logger: logger}
}

// Evaluate computes utilization, queue lengths and times.
// Unstable inputs return models.ErrUnstableQueue and no metrics.
func (s *Service) Evaluate(p models.QueueParams) (*models.QueueMetrics, error) {
	id := util.NewID()
	if err := p.Validate(); err != nil {
		s.logger.Info("queue evaluation rejected",
			"evaluation_id", id,
			"lambda", p.ArrivalRate,
			"mu", p.ServiceRate,
			"error", err,
		)
		return nil, err
	}

	m := metrics(p.ArrivalRate, p.ServiceRate)

	s.logger.Debug("queue evaluated",
		"evaluation_id", id,
		"lambda", p.ArrivalRate,
		"mu", p.ServiceRate,
		"rho", m.Rho,
		"l", m.L,
	)
	return &m, nil
}

func metrics(lambda, mu float64) models.QueueMetrics {
	slack := mu - lambda
	return models.QueueMetrics{
		Rho: lambda / mu,
		L:   lambda / slack,
		Lq:  lambda * lambda / (mu * slack),
		W:   1 / slack,
		Wq:  lambda / (mu * slack),
	}
}

// Curve plots L and Lq against the arrival rate over (0, μ), holding μ
// fixed, with a marker at the current arrival rate.
func (s *Service) Curve(p models.QueueParams) (*models.Chart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lo, hi := curveBounds(p.ServiceRate)
	lambdas := floats.Span(make([]float64, s.curvePoints), lo, hi)
	ls := make([]float64, len(lambdas))
	lqs := make([]float64, len(lambdas))
	for i, lambda := range lambdas {
		m := metrics(lambda, p.ServiceRate)
		ls[i] = m.L
		lqs[i] = m.Lq
	}

	return &models.Chart{
		Title:  "M/M/1 customers vs arrival rate",
		XLabel: "λ (arrivals per time unit)",
		YLabel: "customers",
		Series: []models.Series{
			{Name: "L (in system)", X: lambdas, Y: ls},
			{Name: "Lq (in queue)", X: lambdas, Y: lqs},
		},
		Markers: []models.Marker{
			{Label: fmt.Sprintf("current λ = %g", p.ArrivalRate), X: p.ArrivalRate},
		},
	}, nil
}

// curveBounds returns the sampled arrival-rate interval, strictly inside (0, μ).
func curveBounds(mu float64) (lo, hi float64) {
	lo, hi = 0.1, mu-0.01
	if mu <= 0.2 {
		lo, hi = mu/100, mu*0.99
	}
	return lo, hi
}
