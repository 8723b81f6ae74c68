// Package production provides the two-product production optimizer view.
package production

import (
	"errors"
	"math"
	"strings"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/production"
	"github.com/ordash/ordash/internal/tui/components"
	"github.com/ordash/ordash/internal/util"
)

// minConsumption is the smallest raw-material use per product unit.
const minConsumption = 0.1

// Defaults holds the starting form values. Both profit models are kept so
// switching models shows configured values; Params.Profit selects the
// initial model.
type Defaults struct {
	Params models.ProductionParams
	Fixed  models.FixedProfit
	Priced models.PriceMinusCost
}

// View shows the production form and, after an explicit submit, the optimal
// plan. Editing any input discards the plan until the next submit.
type View struct {
	service  *production.Service
	defaults Defaults
	display  components.Display

	form          *components.Form
	supply        *components.Input
	premiumUse    *components.Input
	mediumUse     *components.Input
	share         *components.Input
	model         *components.Select
	premiumProfit *components.Input
	mediumProfit  *components.Input
	premiumPrice  *components.Input
	premiumCost   *components.Input
	mediumPrice   *components.Input
	mediumCost    *components.Input

	table *components.Table
	bars  *components.BarChart

	plan *models.ProductionPlan
	err  error
}

// NewView creates the production view with the given starting parameters.
func NewView(service *production.Service, defaults Defaults, display components.Display) *View {
	v := &View{
		service:  service,
		defaults: defaults,
		display:  display,
		table:    components.NewKeyValueTable("Plan", "Value"),
		bars:     components.NewBarChart(display.ChartWidth),
	}
	v.table.SetStyles(display.Styles)
	v.bars.SetStyles(display.Styles)
	v.Reset()
	return v
}

// Title returns the module heading.
func (v *View) Title() string {
	return "PRODUCTION OPTIMIZER"
}

// Reset restores the starting parameters and discards any plan.
func (v *View) Reset() {
	d := v.defaults.Params
	unit := v.display.Unit
	cur := v.display.Currency

	fixed, priced := v.defaults.Fixed, v.defaults.Priced
	kind := models.ProfitFixed
	switch m := d.Profit.(type) {
	case models.FixedProfit:
		fixed = m
	case models.PriceMinusCost:
		priced = m
		kind = models.ProfitPriceMinusCost
	}

	v.supply = components.NewNumberInput("Raw material available ("+unit+")", d.TotalSupply, 0)
	v.premiumUse = components.NewNumberInput("Raw material per premium "+unit, d.PremiumConsumption, minConsumption)
	v.mediumUse = components.NewNumberInput("Raw material per medium "+unit, d.MediumConsumption, minConsumption)
	v.share = components.NewNumberInput("Minimum premium share", d.MinPremiumShare, 0)
	v.model = components.NewSelect("Profit model", []string{string(models.ProfitFixed), string(models.ProfitPriceMinusCost)}).
		SetValue(string(kind))
	v.premiumProfit = components.NewNumberInput("Premium profit per "+unit+" ("+cur+")", fixed.Premium, math.Inf(-1))
	v.mediumProfit = components.NewNumberInput("Medium profit per "+unit+" ("+cur+")", fixed.Medium, math.Inf(-1))
	v.premiumPrice = components.NewNumberInput("Premium price per "+unit+" ("+cur+")", priced.PremiumPrice, 0)
	v.premiumCost = components.NewNumberInput("Premium cost per "+unit+" ("+cur+")", priced.PremiumCost, 0)
	v.mediumPrice = components.NewNumberInput("Medium price per "+unit+" ("+cur+")", priced.MediumPrice, 0)
	v.mediumCost = components.NewNumberInput("Medium cost per "+unit+" ("+cur+")", priced.MediumCost, 0)

	v.form = components.NewForm("Production parameters").
		SetHelp("Tab/Down:Next  Shift+Tab/Up:Prev  Left/Right:Profit model  Enter/Ctrl+S:Optimize  Ctrl+R:Reset")
	v.form.SetStyles(v.display.Styles)
	v.model.SetStyles(v.display.Styles)
	for _, f := range v.fields() {
		if in, ok := f.(*components.Input); ok {
			in.SetStyles(v.display.Styles)
		}
		v.form.AddField(f)
	}
	v.syncProfitFields()

	v.plan, v.err = nil, nil
}

func (v *View) fields() []components.FormField {
	return []components.FormField{
		v.supply, v.premiumUse, v.mediumUse, v.share, v.model,
		v.premiumProfit, v.mediumProfit,
		v.premiumPrice, v.premiumCost, v.mediumPrice, v.mediumCost,
	}
}

func (v *View) priced() bool {
	return v.model.Value() == string(models.ProfitPriceMinusCost)
}

// syncProfitFields shows only the inputs of the selected profit model.
func (v *View) syncProfitFields() {
	priced := v.priced()
	for _, in := range []*components.Input{v.premiumProfit, v.mediumProfit} {
		v.form.SetHidden(in, priced)
	}
	for _, in := range []*components.Input{v.premiumPrice, v.premiumCost, v.mediumPrice, v.mediumCost} {
		v.form.SetHidden(in, !priced)
	}
}

// signature captures every input value to detect edits.
func (v *View) signature() string {
	var parts []string
	for _, f := range v.fields() {
		switch c := f.(type) {
		case *components.Input:
			parts = append(parts, c.Value())
		case *components.Select:
			parts = append(parts, c.Value())
		}
	}
	return strings.Join(parts, "\x00")
}

// HandleKey forwards the key to the form, discards the plan when an input
// changed, and optimizes on submit.
func (v *View) HandleKey(key string) {
	before := v.signature()
	v.form.HandleKey(key)
	if v.signature() != before {
		v.syncProfitFields()
		v.plan, v.err = nil, nil
	}

	if v.form.IsSubmitted() {
		v.form.ClearStatus()
		v.Optimize()
		return
	}
	v.form.ClearStatus()
}

// Params parses the current form values.
func (v *View) Params() (models.ProductionParams, error) {
	base, err := components.ParseInputs(v.supply, v.premiumUse, v.mediumUse, v.share)
	if err != nil {
		return models.ProductionParams{}, err
	}
	p := models.ProductionParams{
		TotalSupply:        base[0],
		PremiumConsumption: base[1],
		MediumConsumption:  base[2],
		MinPremiumShare:    base[3],
	}

	if v.priced() {
		vals, err := components.ParseInputs(v.premiumPrice, v.premiumCost, v.mediumPrice, v.mediumCost)
		if err != nil {
			return models.ProductionParams{}, err
		}
		p.Profit = models.PriceMinusCost{PremiumPrice: vals[0], PremiumCost: vals[1], MediumPrice: vals[2], MediumCost: vals[3]}
	} else {
		vals, err := components.ParseInputs(v.premiumProfit, v.mediumProfit)
		if err != nil {
			return models.ProductionParams{}, err
		}
		p.Profit = models.FixedProfit{Premium: vals[0], Medium: vals[1]}
	}
	return p, nil
}

// Optimize solves the program for the current inputs.
func (v *View) Optimize() {
	v.plan, v.err = nil, nil

	p, err := v.Params()
	if err != nil {
		v.err = err
		return
	}

	plan, err := v.service.Optimize(p)
	if err != nil {
		v.err = err
		return
	}
	v.plan = plan

	unit := " " + v.display.Unit
	v.table.SetRows([][]string{
		{"Premium output", util.FormatNumber(plan.Premium, 2) + unit},
		{"Medium output", util.FormatNumber(plan.Medium, 2) + unit},
		{"Maximum profit", util.FormatMoney(v.display.Currency, plan.Profit, 2)},
		{"Profit per premium unit", util.FormatMoney(v.display.Currency, plan.PremiumProfit, 2)},
		{"Profit per medium unit", util.FormatMoney(v.display.Currency, plan.MediumProfit, 2)},
		{"Minimum premium output", util.FormatNumber(plan.MinPremium, 2) + unit},
		{"Raw material used", util.FormatNumber(plan.SupplyUsed, 2) + unit},
		{"Solver", plan.Solver},
	})
}

// Plan returns the last optimal plan, or nil.
func (v *View) Plan() *models.ProductionPlan {
	return v.plan
}

// Err returns the current diagnostic.
func (v *View) Err() error {
	return v.err
}

// Diagnostic returns a user-facing description of the current error.
func (v *View) Diagnostic() string {
	switch {
	case v.err == nil:
		return ""
	case errors.Is(v.err, models.ErrInfeasible):
		return "Infeasible: the minimum premium share needs more raw material than is available"
	case errors.Is(v.err, models.ErrUnbounded):
		return "Unbounded: profit can grow without limit"
	case errors.Is(v.err, models.ErrInvalidParameter):
		return "Invalid input: " + components.OneLine(v.err)
	}
	return "Solver failed: " + components.OneLine(v.err)
}

// Render renders the view.
func (v *View) Render(width, height int) string {
	s := v.display.Styles
	var b strings.Builder

	b.WriteString(s.Title.Render("=== " + v.Title() + " ==="))
	b.WriteString("\n\n")
	b.WriteString(v.form.Render())
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(s.Error.Render("⚠ " + v.Diagnostic()))
		return b.String()
	case v.plan == nil:
		if p, err := v.Params(); err == nil {
			b.WriteString(s.Label.Render("Minimum premium output: "))
			b.WriteString(s.Value.Render(util.FormatNumber(p.MinPremium(), 2) + " " + v.display.Unit))
			b.WriteString("\n")
		}
		b.WriteString(s.Muted.Render("Press Enter on the last field or Ctrl+S to optimize."))
		return b.String()
	}

	b.WriteString(v.table.Render())

	return components.Compose(b.String(), width, 3, v.display, func(w int) string {
		v.bars.SetWidth(w)
		return v.bars.Render(production.Bars(v.plan))
	})
}
