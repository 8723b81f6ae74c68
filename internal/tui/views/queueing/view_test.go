package queueing

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/queueing"
	"github.com/ordash/ordash/internal/testutil"
	"github.com/ordash/ordash/internal/tui/components"
)

func newTestView() *View {
	svc := queueing.NewService(0, testutil.DiscardLogger())
	return NewView(svc, testutil.FixtureQueueParams(), components.DefaultDisplay())
}

func typeKeys(v *View, keys ...string) {
	for _, k := range keys {
		v.HandleKey(k)
	}
}

func TestView_EvaluatesDefaults(t *testing.T) {
	v := newTestView()
	if v.Err() != nil {
		t.Fatalf("Err() = %v", v.Err())
	}
	m := v.Metrics()
	if m == nil || math.Abs(m.Rho-2.0/3) > 1e-9 || math.Abs(m.L-2) > 1e-9 {
		t.Errorf("Metrics() = %+v, want ρ=0.67 L=2", m)
	}
	if v.Curve() == nil {
		t.Error("Curve() = nil for a stable queue")
	}
}

func TestView_Render(t *testing.T) {
	out := newTestView().Render(120, 40)
	for _, want := range []string{"M/M/1 QUEUE", "Arrival rate", "0.67", "2.00", "1.33", "0.50 h (30.0 min)", "0.33 h", "current λ = 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestView_UnstableQueue(t *testing.T) {
	v := newTestView()
	// λ: 4 -> 8, μ stays 6.
	typeKeys(v, "backspace", "8")

	if !errors.Is(v.Err(), models.ErrUnstableQueue) {
		t.Fatalf("Err() = %v, want ErrUnstableQueue", v.Err())
	}
	if v.Metrics() != nil || v.Curve() != nil {
		t.Error("unstable queue should have no metrics or chart")
	}

	out := v.Render(120, 40)
	if !strings.Contains(out, "Queue is unstable") {
		t.Errorf("Render() missing diagnostic:\n%s", out)
	}
	if strings.Contains(out, "Utilization ρ") {
		t.Error("Render() should not show metrics for an unstable queue")
	}
}

func TestView_EqualRatesUnstable(t *testing.T) {
	v := newTestView()
	typeKeys(v, "backspace", "6")
	if !errors.Is(v.Err(), models.ErrUnstableQueue) {
		t.Errorf("λ = μ: Err() = %v, want ErrUnstableQueue", v.Err())
	}
}

func TestView_BelowMinimum(t *testing.T) {
	v := newTestView()
	typeKeys(v, "tab", "backspace", "0")

	if !errors.Is(v.Err(), models.ErrInvalidParameter) {
		t.Fatalf("Err() = %v, want ErrInvalidParameter", v.Err())
	}
	if !strings.Contains(v.Diagnostic(), "Invalid input") {
		t.Errorf("Diagnostic() = %q", v.Diagnostic())
	}
}

func TestView_RejectsLetters(t *testing.T) {
	v := newTestView()
	typeKeys(v, "x", "q")
	if v.arrival.Value() != "4" {
		t.Errorf("arrival value = %q, want unchanged '4'", v.arrival.Value())
	}
}

func TestView_Reset(t *testing.T) {
	v := newTestView()
	typeKeys(v, "backspace", "9")
	if v.Err() == nil {
		t.Fatal("expected unstable queue before reset")
	}
	v.Reset()
	if v.Err() != nil || v.arrival.Value() != "4" {
		t.Errorf("Reset() did not restore defaults: value %q, err %v", v.arrival.Value(), v.Err())
	}
}
