// Package queueing provides the M/M/1 calculator view.
package queueing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/queueing"
	"github.com/ordash/ordash/internal/tui/components"
	"github.com/ordash/ordash/internal/util"
)

// minRate is the smallest accepted arrival or service rate.
const minRate = 0.1

// View shows the queue form, its metrics and the L/Lq curve. Every edit
// re-evaluates the model.
type View struct {
	service  *queueing.Service
	defaults models.QueueParams
	display  components.Display

	form    *components.Form
	arrival *components.Input
	serve   *components.Input
	table   *components.Table
	chart   *components.LineChart

	metrics *models.QueueMetrics
	curve   *models.Chart
	err     error
}

// NewView creates the queue view with the given starting parameters.
func NewView(service *queueing.Service, defaults models.QueueParams, display components.Display) *View {
	v := &View{
		service:  service,
		defaults: defaults,
		display:  display,
		table:    components.NewKeyValueTable("Metric", "Value"),
		chart:    components.NewLineChart(display.ChartWidth, display.ChartHeight),
	}
	v.table.SetStyles(display.Styles)
	v.chart.SetStyles(display.Styles)
	v.Reset()
	return v
}

// Title returns the module heading.
func (v *View) Title() string {
	return "M/M/1 QUEUE"
}

// Reset restores the starting parameters.
func (v *View) Reset() {
	v.arrival = components.NewNumberInput("Arrival rate λ (per hour)", v.defaults.ArrivalRate, minRate)
	v.serve = components.NewNumberInput("Service rate μ (per hour)", v.defaults.ServiceRate, minRate)
	v.arrival.SetStyles(v.display.Styles)
	v.serve.SetStyles(v.display.Styles)

	v.form = components.NewForm("Queue parameters").
		AddField(v.arrival).
		AddField(v.serve)
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
func (v *View) Params() (models.QueueParams, error) {
	values, err := components.ParseInputs(v.arrival, v.serve)
	if err != nil {
		return models.QueueParams{}, err
	}
	return models.QueueParams{ArrivalRate: values[0], ServiceRate: values[1]}, nil
}

func (v *View) evaluate() {
	v.metrics, v.curve, v.err = nil, nil, nil

	p, err := v.Params()
	if err != nil {
		v.err = err
		return
	}

	m, err := v.service.Evaluate(p)
	if err != nil {
		v.err = err
		return
	}
	curve, err := v.service.Curve(p)
	if err != nil {
		v.err = err
		return
	}
	v.metrics, v.curve = m, curve

	v.table.SetRows([][]string{
		{"Utilization ρ", util.FormatNumber(m.Rho, 2)},
		{"Customers in system L", util.FormatNumber(m.L, 2)},
		{"Customers in queue Lq", util.FormatNumber(m.Lq, 2)},
		{"Time in system W", formatHours(m.W)},
		{"Time in queue Wq", formatHours(m.Wq)},
	})
}

func formatHours(h float64) string {
	return fmt.Sprintf("%s h (%s min)", util.FormatNumber(h, 2), util.FormatNumber(h*60, 1))
}

// Metrics returns the last successful evaluation, or nil.
func (v *View) Metrics() *models.QueueMetrics {
	return v.metrics
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
	case errors.Is(v.err, models.ErrUnstableQueue):
		return "Queue is unstable: arrival rate must be below service rate (ρ ≥ 1)"
	}
	return "Invalid input: " + components.OneLine(v.err)
}

// Render renders the view. The chart sits beside the results when the
// width allows.
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

	b.WriteString(s.Label.Render("Utilization "))
	b.WriteString(components.Gauge(v.metrics.Rho, 1, 32, 0.85, s))
	b.WriteString("\n\n")
	b.WriteString(v.table.Render())

	return components.Compose(b.String(), width, 3, v.display, func(w int) string {
		v.chart.SetSize(w, v.display.ChartHeightFor(height))
		return v.chart.Render(v.curve)
	})
}
