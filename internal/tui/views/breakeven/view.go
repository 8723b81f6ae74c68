// Package breakeven provides the break-even calculator view.
package breakeven

import (
	"errors"
	"strings"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/breakeven"
	"github.com/ordash/ordash/internal/tui/components"
	"github.com/ordash/ordash/internal/util"
)

// View shows the break-even form, the volume to sell and the cost/revenue
// lines.
type View struct {
	service  *breakeven.Service
	defaults models.BreakEvenParams
	display  components.Display

	form     *components.Form
	fixed    *components.Input
	variable *components.Input
	price    *components.Input
	table    *components.Table
	chart    *components.LineChart

	params models.BreakEvenParams
	result *models.BreakEvenResult
	curve  *models.Chart
	err    error
}

// NewView creates the break-even view with the given starting parameters.
func NewView(service *breakeven.Service, defaults models.BreakEvenParams, display components.Display) *View {
	v := &View{
		service:  service,
		defaults: defaults,
		display:  display,
		table:    components.NewKeyValueTable("Result", "Value"),
		chart:    components.NewLineChart(display.ChartWidth, display.ChartHeight),
	}
	v.table.SetStyles(display.Styles)
	v.chart.SetStyles(display.Styles)
	v.Reset()
	return v
}

// Title returns the module heading.
func (v *View) Title() string {
	return "BREAK-EVEN POINT"
}

// Reset restores the starting parameters.
func (v *View) Reset() {
	cur := v.display.Currency
	v.fixed = components.NewNumberInput("Fixed cost ("+cur+")", v.defaults.FixedCost, 0)
	v.variable = components.NewNumberInput("Variable cost per unit ("+cur+")", v.defaults.VariableCost, 0)
	v.price = components.NewNumberInput("Price per unit ("+cur+")", v.defaults.Price, 0)

	v.form = components.NewForm("Cost structure")
	for _, in := range []*components.Input{v.fixed, v.variable, v.price} {
		in.SetStyles(v.display.Styles)
		v.form.AddField(in)
	}
	v.form.SetStyles(v.display.Styles)
	v.evaluate()
}

// HandleKey forwards the key to the form and re-evaluates.
func (v *View) HandleKey(key string) {
	v.form.HandleKey(key)
	v.form.ClearStatus()
	v.evaluate()
}

// Params parses the current form values.
func (v *View) Params() (models.BreakEvenParams, error) {
	values, err := components.ParseInputs(v.fixed, v.variable, v.price)
	if err != nil {
		return models.BreakEvenParams{}, err
	}
	return models.BreakEvenParams{FixedCost: values[0], VariableCost: values[1], Price: values[2]}, nil
}

func (v *View) evaluate() {
	v.result, v.curve, v.err = nil, nil, nil

	p, err := v.Params()
	if err != nil {
		v.err = err
		return
	}

	result, err := v.service.Evaluate(p)
	if err != nil {
		v.err = err
		return
	}
	curve, err := v.service.Curve(p, result)
	if err != nil {
		v.err = err
		return
	}
	v.params, v.result, v.curve = p, result, curve

	money := func(x float64) string { return util.FormatMoney(v.display.Currency, x, 0) }
	v.table.SetRows([][]string{
		{"Units to sell (" + string(result.Rounding) + ")", util.FormatNumber(result.RoundedUnits, 0)},
		{"Exact break-even volume", util.FormatNumber(result.Units, 2)},
		{"Contribution margin", money(result.Margin)},
		{"Revenue at break-even", money(result.Revenue)},
		{"Profit at units to sell", money(breakeven.ProfitAt(p, result.RoundedUnits))},
	})
}

// Result returns the last successful evaluation, or nil.
func (v *View) Result() *models.BreakEvenResult {
	return v.result
}

// Curve returns the chart of the last successful evaluation, or nil.
func (v *View) Curve() *models.Chart {
	return v.curve
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
	case errors.Is(v.err, models.ErrNoBreakEven):
		return "No break-even point: price per unit must exceed variable cost"
	}
	return "Invalid input: " + components.OneLine(v.err)
}

// Render renders the view.
func (v *View) Render(width, height int) string {
	s := v.display.Styles
	var b strings.Builder

	b.WriteString(s.Title.Render("=== " + v.Title() + " ==="))
	b.WriteString("\n\n")
	b.WriteString(v.form.Render())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(s.Error.Render("⚠ " + v.Diagnostic()))
		return b.String()
	}

	b.WriteString(v.table.Render())

	return components.Compose(b.String(), width, 3, v.display, func(w int) string {
		v.chart.SetSize(w, v.display.ChartHeightFor(height))
		return v.chart.Render(v.curve)
	})
}
