package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Display carries the formatting preferences shared by the calculator views.
type Display struct {
	Currency    string
	Unit        string
	ChartWidth  int
	ChartHeight int
	Styles      Styles
}

// DefaultDisplay returns the display used when no configuration is given.
func DefaultDisplay() Display {
	return Display{
		Currency:    "Rp",
		Unit:        "kg",
		ChartWidth:  72,
		ChartHeight: 12,
		Styles:      DefaultStyles(),
	}
}

// ChartWidthFor clamps the configured chart width to the available width.
func (d Display) ChartWidthFor(available int) int {
	if available > 0 && available < d.ChartWidth {
		return available
	}
	return d.ChartWidth
}

// ChartHeightFor shrinks the plot on short terminals. A line chart adds
// about eight lines of title, axis and legend around its plot rows.
func (d Display) ChartHeightFor(available int) int {
	if available <= 0 {
		return d.ChartHeight
	}
	return max(4, min(d.ChartHeight, available-8))
}

// Gauge renders a [████░░░░] bar for value in [0, max]. Ratios above warn
// render in the error style.
func Gauge(value, max float64, width int, warn float64, s Styles) string {
	if max <= 0 {
		max = 1
	}
	ratio := value / max
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	barWidth := width - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(ratio * float64(barWidth))
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"

	if ratio >= warn {
		return s.Error.Render(bar)
	}
	return s.Value.Render(bar)
}

// minSideChartWidth is the narrowest chart placed beside the body.
const minSideChartWidth = 40

// Compose places a chart to the right of body when width leaves at least
// minSideChartWidth columns for it, otherwise below body. chart receives the
// width it may use and may return "" to omit the chart.
func Compose(body string, width, gap int, d Display, chart func(width int) string) string {
	side := width - lipgloss.Width(body) - gap
	if side >= minSideChartWidth {
		rendered := chart(d.ChartWidthFor(side))
		if rendered == "" {
			return body
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, body, strings.Repeat(" ", gap), rendered)
	}

	rendered := chart(d.ChartWidthFor(width))
	if rendered == "" {
		return body
	}
	return body + "\n\n" + rendered
}

// OneLine flattens a possibly joined error into a single display line.
func OneLine(err error) string {
	if err == nil {
		return ""
	}
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
