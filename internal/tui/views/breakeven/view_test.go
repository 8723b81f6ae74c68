package breakeven

import (
	"errors"
	"strings"
	"testing"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/breakeven"
	"github.com/ordash/ordash/internal/testutil"
	"github.com/ordash/ordash/internal/tui/components"
)

func newTestView(rounding models.RoundingMode) *View {
	svc := breakeven.NewService(rounding, 0, testutil.DiscardLogger())
	return NewView(svc, testutil.FixtureBreakEvenParams(), components.DefaultDisplay())
}

func TestView_EvaluatesDefaults(t *testing.T) {
	v := newTestView(models.RoundCeil)
	r := v.Result()
	if v.Err() != nil || r == nil {
		t.Fatalf("Result() = %+v, Err() = %v", r, v.Err())
	}
	if r.RoundedUnits != 667 {
		t.Errorf("RoundedUnits = %v, want 667", r.RoundedUnits)
	}

	out := v.Render(120, 40)
	for _, want := range []string{"BREAK-EVEN POINT", "Units to sell (ceil)", "667", "666.67", "Rp 30,000", "BEP ≈ 667 units"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestView_FloorRounding(t *testing.T) {
	v := newTestView(models.RoundFloor)
	if r := v.Result(); r == nil || r.RoundedUnits != 666 {
		t.Errorf("floor RoundedUnits = %+v, want 666", r)
	}
	if !strings.Contains(v.Render(120, 40), "Units to sell (floor)") {
		t.Error("Render() should name the rounding mode")
	}
}

func TestView_NoBreakEven(t *testing.T) {
	v := newTestView(models.RoundCeil)
	// Price 50000 -> 5000, below the variable cost of 20000.
	v.HandleKey("tab")
	v.HandleKey("tab")
	v.HandleKey("backspace")

	if !errors.Is(v.Err(), models.ErrNoBreakEven) {
		t.Fatalf("Err() = %v, want ErrNoBreakEven", v.Err())
	}
	if v.Result() != nil || v.Curve() != nil {
		t.Error("no break-even should produce neither result nor chart")
	}
	out := v.Render(120, 40)
	if !strings.Contains(out, "No break-even point") {
		t.Errorf("Render() missing diagnostic:\n%s", out)
	}
	if strings.Contains(out, "Total revenue") {
		t.Error("Render() should not draw a chart without a break-even point")
	}
}

func TestView_ZeroFixedCost(t *testing.T) {
	v := newTestView(models.RoundCeil)
	for range len("20000000") {
		v.HandleKey("backspace")
	}
	v.HandleKey("0")

	r := v.Result()
	if r == nil || r.Units != 0 || r.RoundedUnits != 0 {
		t.Fatalf("Result() = %+v, want zero units", r)
	}
	if lo, hi := v.Curve().XRange(); lo != 0 || hi < 99.99 {
		t.Errorf("XRange() = [%v, %v], want [0, 100]", lo, hi)
	}
}
