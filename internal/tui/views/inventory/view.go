// Package inventory provides the EOQ calculator view.
package inventory

import (
	"strings"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/inventory"
	"github.com/ordash/ordash/internal/tui/components"
	"github.com/ordash/ordash/internal/util"
)

// minInput is the smallest accepted demand or cost.
const minInput = 1

// View shows the EOQ form, the optimal order size and the cost curves.
type View struct {
	service  *inventory.Service
	defaults models.EOQParams
	display  components.Display

	form    *components.Form
	demand  *components.Input
	order   *components.Input
	holding *components.Input
	table   *components.Table
	chart   *components.LineChart

	result *models.EOQResult
	curve  *models.Chart
	err    error
}

// NewView creates the EOQ view with the given starting parameters.
func NewView(service *inventory.Service, defaults models.EOQParams, display components.Display) *View {
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
	return "ECONOMIC ORDER QUANTITY"
}

// Reset restores the starting parameters.
func (v *View) Reset() {
	unit := v.display.Unit
	v.demand = components.NewNumberInput("Demand per period ("+unit+")", v.defaults.Demand, minInput)
	v.order = components.NewNumberInput("Cost per order ("+v.display.Currency+")", v.defaults.OrderCost, minInput)
	v.holding = components.NewNumberInput("Holding cost per "+unit, v.defaults.HoldingCost, minInput)

	v.form = components.NewForm("Inventory parameters")
	for _, in := range []*components.Input{v.demand, v.order, v.holding} {
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
func (v *View) Params() (models.EOQParams, error) {
	values, err := components.ParseInputs(v.demand, v.order, v.holding)
	if err != nil {
		return models.EOQParams{}, err
	}
	return models.EOQParams{Demand: values[0], OrderCost: values[1], HoldingCost: values[2]}, nil
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
	curve, err := v.service.CostCurve(p, result)
	if err != nil {
		v.err = err
		return
	}
	v.result, v.curve = result, curve

	money := func(x float64) string { return util.FormatMoney(v.display.Currency, x, 2) }
	v.table.SetRows([][]string{
		{"Optimal order quantity", util.FormatNumber(result.Quantity, 2) + " " + v.display.Unit},
		{"Orders per period", util.FormatNumber(result.OrdersPerPeriod, 2)},
		{"Ordering cost", money(result.OrderingCost)},
		{"Holding cost", money(result.HoldingCost)},
		{"Minimum total cost", money(result.TotalCost)},
	})
}

// Result returns the last successful evaluation, or nil.
func (v *View) Result() *models.EOQResult {
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
	if v.err == nil {
		return ""
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
