// Package config provides configuration management for ordash.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"

	"github.com/ordash/ordash/internal/models"
)

// Config holds the complete application configuration.
type Config struct {
	Display    DisplayConfig    `toml:"display"`
	Logging    LoggingConfig    `toml:"logging"`
	Queueing   QueueingConfig   `toml:"queueing"`
	Inventory  InventoryConfig  `toml:"inventory"`
	Production ProductionConfig `toml:"production"`
	BreakEven  BreakEvenConfig  `toml:"breakeven"`
}

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	StartMode   string      `toml:"start_mode"`
	ChartHeight int         `toml:"chart_height"`
	ChartWidth  int         `toml:"chart_width"`
	Currency    string      `toml:"currency"`
	UnitLabel   string      `toml:"unit_label"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeGreenPhosphor ColorScheme = "green_phosphor"
	ColorSchemeAmber         ColorScheme = "amber"
	ColorSchemeWhite         ColorScheme = "white"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// QueueingConfig holds the M/M/1 form defaults.
type QueueingConfig struct {
	ArrivalRate float64 `toml:"arrival_rate"`
	ServiceRate float64 `toml:"service_rate"`
	CurvePoints int     `toml:"curve_points"`
}

// InventoryConfig holds the EOQ form defaults.
type InventoryConfig struct {
	Demand      float64 `toml:"demand"`
	OrderCost   float64 `toml:"order_cost"`
	HoldingCost float64 `toml:"holding_cost"`
	SweepPoints int     `toml:"sweep_points"`
}

// ProductionConfig holds the production optimizer defaults.
type ProductionConfig struct {
	Solver             string            `toml:"solver"`
	ProfitModel        models.ProfitKind `toml:"profit_model"`
	TotalSupply        float64           `toml:"total_supply"`
	PremiumConsumption float64           `toml:"premium_consumption"`
	MediumConsumption  float64           `toml:"medium_consumption"`
	MinPremiumShare    float64           `toml:"min_premium_share"`
	PremiumProfit      float64           `toml:"premium_profit"`
	MediumProfit       float64           `toml:"medium_profit"`
	PremiumPrice       float64           `toml:"premium_price"`
	PremiumCost        float64           `toml:"premium_cost"`
	MediumPrice        float64           `toml:"medium_price"`
	MediumCost         float64           `toml:"medium_cost"`
}

// BreakEvenConfig holds the break-even form defaults.
type BreakEvenConfig struct {
	FixedCost    float64             `toml:"fixed_cost"`
	VariableCost float64             `toml:"variable_cost"`
	Price        float64             `toml:"price"`
	Rounding     models.RoundingMode `toml:"rounding"`
	CurvePoints  int                 `toml:"curve_points"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Queueing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("queueing: %w", err))
	}

	if err := c.Inventory.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("inventory: %w", err))
	}

	if err := c.Production.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("production: %w", err))
	}

	if err := c.BreakEven.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("breakeven: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	var errs []error

	validSchemes := map[ColorScheme]bool{
		ColorSchemeGreenPhosphor: true,
		ColorSchemeAmber:         true,
		ColorSchemeWhite:         true,
	}

	if !validSchemes[d.ColorScheme] && d.ColorScheme != "" {
		errs = append(errs, fmt.Errorf("invalid color_scheme: %s", d.ColorScheme))
	}

	if d.StartMode != "" {
		if _, err := models.ParseMode(d.StartMode); err != nil {
			errs = append(errs, fmt.Errorf("start_mode: %w", err))
		}
	}

	if d.ChartHeight < 4 {
		errs = append(errs, errors.New("chart_height must be at least 4"))
	}

	if d.ChartWidth < 20 {
		errs = append(errs, errors.New("chart_width must be at least 20"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Validate checks the queueing defaults. The form values themselves may
// describe an unstable queue; the view reports that as a diagnostic.
func (q *QueueingConfig) Validate() error {
	var errs []error

	if q.ArrivalRate <= 0 {
		errs = append(errs, errors.New("arrival_rate must be positive"))
	}

	if q.ServiceRate <= 0 {
		errs = append(errs, errors.New("service_rate must be positive"))
	}

	if q.CurvePoints < 2 {
		errs = append(errs, errors.New("curve_points must be at least 2"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks the EOQ defaults.
func (i *InventoryConfig) Validate() error {
	var errs []error

	if i.Demand <= 0 {
		errs = append(errs, errors.New("demand must be positive"))
	}

	if i.OrderCost <= 0 {
		errs = append(errs, errors.New("order_cost must be positive"))
	}

	if i.HoldingCost <= 0 {
		errs = append(errs, errors.New("holding_cost must be positive"))
	}

	if i.SweepPoints < 2 {
		errs = append(errs, errors.New("sweep_points must be at least 2"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks the production defaults.
func (p *ProductionConfig) Validate() error {
	var errs []error

	switch p.Solver {
	case "", "simplex", "vertex":
	default:
		errs = append(errs, fmt.Errorf("invalid solver: %s", p.Solver))
	}

	if _, err := models.ParseProfitKind(string(p.ProfitModel)); err != nil {
		errs = append(errs, err)
	}

	if p.TotalSupply < 0 {
		errs = append(errs, errors.New("total_supply must be non-negative"))
	}

	if p.PremiumConsumption <= 0 {
		errs = append(errs, errors.New("premium_consumption must be positive"))
	}

	if p.MediumConsumption <= 0 {
		errs = append(errs, errors.New("medium_consumption must be positive"))
	}

	if p.MinPremiumShare < 0 {
		errs = append(errs, errors.New("min_premium_share must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks the break-even defaults.
func (b *BreakEvenConfig) Validate() error {
	var errs []error

	if b.FixedCost < 0 {
		errs = append(errs, errors.New("fixed_cost must be non-negative"))
	}

	if b.VariableCost < 0 {
		errs = append(errs, errors.New("variable_cost must be non-negative"))
	}

	if b.Price < 0 {
		errs = append(errs, errors.New("price must be non-negative"))
	}

	if _, err := models.ParseRoundingMode(string(b.Rounding)); err != nil {
		errs = append(errs, err)
	}

	if b.CurvePoints < 2 {
		errs = append(errs, errors.New("curve_points must be at least 2"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ColorScheme: ColorSchemeGreenPhosphor,
			StartMode:   string(models.ModeQueue),
			ChartHeight: 12,
			ChartWidth:  72,
			Currency:    "Rp",
			UnitLabel:   "kg",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "logs/ordash.log",
		},
		Queueing: QueueingConfig{
			ArrivalRate: 4,
			ServiceRate: 6,
			CurvePoints: 100,
		},
		Inventory: InventoryConfig{
			Demand:      10000,
			OrderCost:   200000,
			HoldingCost: 100,
			SweepPoints: 500,
		},
		Production: ProductionConfig{
			Solver:             "simplex",
			ProfitModel:        models.ProfitFixed,
			TotalSupply:        10000,
			PremiumConsumption: 1.2,
			MediumConsumption:  1.0,
			MinPremiumShare:    0.2,
			PremiumProfit:      40,
			MediumProfit:       60,
			PremiumPrice:       12000,
			PremiumCost:        6000,
			MediumPrice:        9000,
			MediumCost:         5000,
		},
		BreakEven: BreakEvenConfig{
			FixedCost:    20000000,
			VariableCost: 20000,
			Price:        50000,
			Rounding:     models.RoundCeil,
			CurvePoints:  200,
		},
	}
}

// QueueParams returns the configured queue inputs.
func (q *QueueingConfig) QueueParams() models.QueueParams {
	return models.QueueParams{ArrivalRate: q.ArrivalRate, ServiceRate: q.ServiceRate}
}

// EOQParams returns the configured EOQ inputs.
func (i *InventoryConfig) EOQParams() models.EOQParams {
	return models.EOQParams{Demand: i.Demand, OrderCost: i.OrderCost, HoldingCost: i.HoldingCost}
}

// Model returns the configured profit strategy.
func (p *ProductionConfig) Model() models.ProfitModel {
	if p.ProfitModel == models.ProfitPriceMinusCost {
		return models.PriceMinusCost{
			PremiumPrice: p.PremiumPrice,
			PremiumCost:  p.PremiumCost,
			MediumPrice:  p.MediumPrice,
			MediumCost:   p.MediumCost,
		}
	}
	return models.FixedProfit{Premium: p.PremiumProfit, Medium: p.MediumProfit}
}

// ProductionParams returns the configured production inputs.
func (p *ProductionConfig) ProductionParams() models.ProductionParams {
	return models.ProductionParams{
		TotalSupply:        p.TotalSupply,
		PremiumConsumption: p.PremiumConsumption,
		MediumConsumption:  p.MediumConsumption,
		MinPremiumShare:    p.MinPremiumShare,
		Profit:             p.Model(),
	}
}

// BreakEvenParams returns the configured break-even inputs.
func (b *BreakEvenConfig) BreakEvenParams() models.BreakEvenParams {
	return models.BreakEvenParams{FixedCost: b.FixedCost, VariableCost: b.VariableCost, Price: b.Price}
}
