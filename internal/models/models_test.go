package models

import (
	"errors"
	"math"
	"testing"
)

func TestQueueParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  QueueParams
		wantErr error
	}{
		{"Stable", QueueParams{ArrivalRate: 4, ServiceRate: 6}, nil},
		{"Equal rates", QueueParams{ArrivalRate: 6, ServiceRate: 6}, ErrUnstableQueue},
		{"Arrival above service", QueueParams{ArrivalRate: 7, ServiceRate: 6}, ErrUnstableQueue},
		{"Zero service rate", QueueParams{ArrivalRate: 1, ServiceRate: 0}, ErrInvalidParameter},
		{"Negative arrival rate", QueueParams{ArrivalRate: -1, ServiceRate: 6}, ErrInvalidParameter},
		{"NaN arrival rate", QueueParams{ArrivalRate: math.NaN(), ServiceRate: 6}, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEOQParams_Validate(t *testing.T) {
	if err := (EOQParams{Demand: 10000, OrderCost: 200000, HoldingCost: 100}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := EOQParams{Demand: 0, OrderCost: 1, HoldingCost: 0}.Validate()
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("expected a ValidationError in the chain")
	}
	if verr.Field != "demand" {
		t.Errorf("first invalid field = %q, want %q", verr.Field, "demand")
	}
}

func TestBreakEvenParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  BreakEvenParams
		wantErr error
	}{
		{"Profitable", BreakEvenParams{FixedCost: 20000000, VariableCost: 20000, Price: 50000}, nil},
		{"Zero fixed cost", BreakEvenParams{FixedCost: 0, VariableCost: 1, Price: 2}, nil},
		{"Price equals cost", BreakEvenParams{FixedCost: 100, VariableCost: 5, Price: 5}, ErrNoBreakEven},
		{"Price below cost", BreakEvenParams{FixedCost: 100, VariableCost: 5, Price: 4}, ErrNoBreakEven},
		{"Negative fixed cost", BreakEvenParams{FixedCost: -1, VariableCost: 5, Price: 10}, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRoundingMode_Apply(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		in   float64
		want float64
	}{
		{RoundCeil, 666.67, 667},
		{RoundFloor, 666.67, 666},
		{RoundNearest, 666.67, 667},
		{RoundNearest, 666.4, 666},
		{RoundCeil, 500, 500},
		{"", 1.2, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.Apply(tt.in); got != tt.want {
				t.Errorf("%q.Apply(%v) = %v, want %v", tt.mode, tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRoundingMode(t *testing.T) {
	if m, err := ParseRoundingMode(""); err != nil || m != RoundCeil {
		t.Errorf("ParseRoundingMode(\"\") = %q, %v; want ceil", m, err)
	}
	if _, err := ParseRoundingMode("banker"); err == nil {
		t.Error("expected error for unknown rounding mode")
	}
}

func TestProfitModels_Margins(t *testing.T) {
	tests := []struct {
		name        string
		model       ProfitModel
		wantPremium float64
		wantMedium  float64
		wantKind    ProfitKind
	}{
		{"Fixed", FixedProfit{Premium: 40, Medium: 60}, 40, 60, ProfitFixed},
		{"Price minus cost", PriceMinusCost{PremiumPrice: 12000, PremiumCost: 6000, MediumPrice: 9000, MediumCost: 5000}, 6000, 4000, ProfitPriceMinusCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m := tt.model.Margins()
			if p != tt.wantPremium || m != tt.wantMedium {
				t.Errorf("Margins() = (%v, %v), want (%v, %v)", p, m, tt.wantPremium, tt.wantMedium)
			}
			if tt.model.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", tt.model.Kind(), tt.wantKind)
			}
		})
	}
}

func TestProductionParams_Validate(t *testing.T) {
	valid := ProductionParams{
		TotalSupply:        10000,
		PremiumConsumption: 1.2,
		MediumConsumption:  1.0,
		MinPremiumShare:    0.2,
		Profit:             FixedProfit{Premium: 40, Medium: 60},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noDivisor := valid
	noDivisor.PremiumConsumption = 0
	if err := noDivisor.Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero consumption, got %v", err)
	}

	noProfit := valid
	noProfit.Profit = nil
	if err := noProfit.Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for missing profit model, got %v", err)
	}
}

func TestProductionParams_MinPremium(t *testing.T) {
	p := ProductionParams{TotalSupply: 10000, PremiumConsumption: 1.2, MinPremiumShare: 0.2}
	got := p.MinPremium()
	if math.Abs(got-1666.6667) > 0.001 {
		t.Errorf("MinPremium() = %v, want ~1666.67", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"queue", ModeQueue},
		{"mm1", ModeQueue},
		{"eoq", ModeEOQ},
		{"production", ModeProduction},
		{"bep", ModeBreakEven},
		{"breakeven", ModeBreakEven},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseMode("simplex"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestBarChart_Max(t *testing.T) {
	var empty *BarChart
	if empty.Max() != 0 {
		t.Error("expected 0 for nil chart")
	}
	b := &BarChart{Bars: []Bar{{"a", 3}, {"b", 8}, {"c", 1}}}
	if b.Max() != 8 {
		t.Errorf("Max() = %v, want 8", b.Max())
	}
}
