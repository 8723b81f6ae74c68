package queueing

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/testutil"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func TestService_Evaluate_Reference(t *testing.T) {
	svc := NewService(0, testutil.DiscardLogger())

	got, err := svc.Evaluate(testutil.FixtureQueueParams())
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	rounded := models.QueueMetrics{
		Rho: round2(got.Rho),
		L:   round2(got.L),
		Lq:  round2(got.Lq),
		W:   round2(got.W),
		Wq:  round2(got.Wq),
	}
	want := models.QueueMetrics{Rho: 0.67, L: 2.00, Lq: 1.33, W: 0.50, Wq: 0.33}

	if diff := cmp.Diff(want, rounded); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Evaluate_Identities(t *testing.T) {
	svc := NewService(0, testutil.DiscardLogger())
	approx := cmpopts.EquateApprox(1e-9, 1e-9)

	cases := []models.QueueParams{
		{ArrivalRate: 0.1, ServiceRate: 0.2},
		{ArrivalRate: 1, ServiceRate: 1.5},
		{ArrivalRate: 4, ServiceRate: 6},
		{ArrivalRate: 9.99, ServiceRate: 10},
		{ArrivalRate: 250, ServiceRate: 1000},
	}

	for _, p := range cases {
		m, err := svc.Evaluate(p)
		if err != nil {
			t.Fatalf("Evaluate(%+v) error: %v", p, err)
		}
		if m.Rho <= 0 || m.Rho >= 1 {
			t.Errorf("rho = %v, want in (0,1)", m.Rho)
		}
		if !cmp.Equal(m.L, m.Lq+m.Rho, approx) {
			t.Errorf("L = %v, want Lq+rho = %v", m.L, m.Lq+m.Rho)
		}
		if !cmp.Equal(m.W, m.Wq+1/p.ServiceRate, approx) {
			t.Errorf("W = %v, want Wq+1/mu = %v", m.W, m.Wq+1/p.ServiceRate)
		}
	}
}

func TestService_Evaluate_Unstable(t *testing.T) {
	svc := NewService(0, testutil.DiscardLogger())

	tests := []struct {
		name   string
		lambda float64
	}{
		{"Equal", 6},
		{"Above", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.FixtureQueueParams(func(p *models.QueueParams) {
				p.ArrivalRate = tt.lambda
			})
			m, err := svc.Evaluate(p)
			if !errors.Is(err, models.ErrUnstableQueue) {
				t.Fatalf("expected ErrUnstableQueue, got %v", err)
			}
			if m != nil {
				t.Error("expected no metrics for an unstable queue")
			}
		})
	}
}

func TestService_Evaluate_Idempotent(t *testing.T) {
	svc := NewService(0, testutil.DiscardLogger())
	p := testutil.FixtureQueueParams()

	first, _ := svc.Evaluate(p)
	second, _ := svc.Evaluate(p)
	if *first != *second {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}

func TestService_Curve(t *testing.T) {
	svc := NewService(50, testutil.DiscardLogger())
	p := testutil.FixtureQueueParams()

	chart, err := svc.Curve(p)
	if err != nil {
		t.Fatalf("Curve() error: %v", err)
	}
	if len(chart.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(chart.Series))
	}
	for _, s := range chart.Series {
		if len(s.X) != 50 || len(s.Y) != 50 {
			t.Errorf("series %q has %d/%d points, want 50", s.Name, len(s.X), len(s.Y))
		}
		for _, y := range s.Y {
			if math.IsInf(y, 0) || math.IsNaN(y) {
				t.Fatalf("series %q contains non-finite value", s.Name)
			}
		}
	}

	lo, hi := chart.XRange()
	if lo <= 0 || hi >= p.ServiceRate {
		t.Errorf("x range [%v, %v] not inside (0, %v)", lo, hi, p.ServiceRate)
	}
	if len(chart.Markers) != 1 || chart.Markers[0].X != p.ArrivalRate {
		t.Errorf("expected marker at current lambda, got %+v", chart.Markers)
	}
}

func TestService_Curve_SmallServiceRate(t *testing.T) {
	svc := NewService(10, testutil.DiscardLogger())
	p := models.QueueParams{ArrivalRate: 0.05, ServiceRate: 0.15}

	chart, err := svc.Curve(p)
	if err != nil {
		t.Fatalf("Curve() error: %v", err)
	}
	lo, hi := chart.XRange()
	if lo <= 0 || hi >= p.ServiceRate || lo >= hi {
		t.Errorf("x range [%v, %v] invalid for mu=%v", lo, hi, p.ServiceRate)
	}
}

func TestService_Curve_Unstable(t *testing.T) {
	svc := NewService(10, testutil.DiscardLogger())
	if _, err := svc.Curve(models.QueueParams{ArrivalRate: 7, ServiceRate: 6}); !errors.Is(err, models.ErrUnstableQueue) {
		t.Errorf("expected ErrUnstableQueue, got %v", err)
	}
}
