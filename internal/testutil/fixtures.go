// Package testutil provides parameter fixtures and helpers for tests.
package testutil

import (
	"log/slog"

	"github.com/ordash/ordash/internal/models"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// FixtureQueueParams returns a stable M/M/1 queue (λ=4, μ=6).
func FixtureQueueParams(overrides ...func(*models.QueueParams)) models.QueueParams {
	p := models.QueueParams{ArrivalRate: 4, ServiceRate: 6}
	for _, override := range overrides {
		override(&p)
	}
	return p
}

// FixtureEOQParams returns the reference EOQ inputs.
func FixtureEOQParams(overrides ...func(*models.EOQParams)) models.EOQParams {
	p := models.EOQParams{Demand: 10000, OrderCost: 200000, HoldingCost: 100}
	for _, override := range overrides {
		override(&p)
	}
	return p
}

// FixtureBreakEvenParams returns inputs breaking even at 666.67 units.
func FixtureBreakEvenParams(overrides ...func(*models.BreakEvenParams)) models.BreakEvenParams {
	p := models.BreakEvenParams{FixedCost: 20000000, VariableCost: 20000, Price: 50000}
	for _, override := range overrides {
		override(&p)
	}
	return p
}

// FixtureProductionParams returns the base production program with fixed
// profits of 40 and 60 per unit.
func FixtureProductionParams(overrides ...func(*models.ProductionParams)) models.ProductionParams {
	p := models.ProductionParams{
		TotalSupply:        10000,
		PremiumConsumption: 1.2,
		MediumConsumption:  1.0,
		MinPremiumShare:    0.2,
		Profit:             models.FixedProfit{Premium: 40, Medium: 60},
	}
	for _, override := range overrides {
		override(&p)
	}
	return p
}

// FixtureDifferentiatedProductionParams returns the production program with
// profits derived from prices and costs.
func FixtureDifferentiatedProductionParams(overrides ...func(*models.ProductionParams)) models.ProductionParams {
	return FixtureProductionParams(append([]func(*models.ProductionParams){
		func(p *models.ProductionParams) {
			p.Profit = models.PriceMinusCost{
				PremiumPrice: 12000,
				PremiumCost:  6000,
				MediumPrice:  9000,
				MediumCost:   5000,
			}
		},
	}, overrides...)...)
}
