package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/util"
)

// seriesColors cycles through distinguishable ANSI colors per series.
var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Cyan,
	asciigraph.Magenta,
}

// LineChart renders a chart with asciigraph. Below the plot it draws an
// x axis carrying the chart markers, the grid bounds, and one legend line
// per marker. Markers outside the plotted range are pinned to the nearest
// edge and flagged.
type LineChart struct {
	width  int
	height int
	styles Styles
}

// NewLineChart creates a line chart renderer. width is the total width
// available including the y-axis labels.
func NewLineChart(width, height int) *LineChart {
	return &LineChart{width: width, height: height, styles: DefaultStyles()}
}

// SetStyles replaces the chart palette.
func (l *LineChart) SetStyles(s Styles) {
	l.styles = s
}

// SetSize changes the drawing area.
func (l *LineChart) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Render draws c. A nil or empty chart renders as "".
func (l *LineChart) Render(c *models.Chart) string {
	if c == nil || len(c.Series) == 0 || len(c.Series[0].Y) == 0 {
		return ""
	}

	plotWidth := l.width - 14
	if plotWidth < 10 {
		plotWidth = 10
	}
	height := l.height
	if height < 2 {
		height = 2
	}

	data := make([][]float64, len(c.Series))
	names := make([]string, len(c.Series))
	colors := make([]asciigraph.AnsiColor, len(c.Series))
	for i, s := range c.Series {
		data[i] = s.Y
		names[i] = s.Name
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	plot := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(precisionFor(data)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(names...),
	)

	lines := strings.Split(plot, "\n")
	rows := 0
	for rows < len(lines) && strings.ContainsAny(lines[rows], "┤┼") {
		rows++
	}
	if rows == 0 {
		return plot
	}
	axisCol := axisColumn(lines[0])

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(l.styles.Title.Render(c.Title))
		b.WriteString("\n")
	}
	if c.YLabel != "" {
		b.WriteString(l.styles.Label.Render(c.YLabel))
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(lines[:rows], "\n"))
	b.WriteString("\n")

	lo, hi := c.XRange()
	axis := []rune(strings.Repeat(" ", axisCol) + "└" + strings.Repeat("─", plotWidth))
	var notes []string
	for _, m := range c.Markers {
		col, inside := markerColumn(m.X, lo, hi, plotWidth)
		axis[axisCol+1+col] = '▲'
		note := "▲ " + m.Label
		if !inside {
			note += " (outside plotted range)"
		}
		notes = append(notes, note)
	}
	b.WriteString(l.styles.Border.Render(string(axis)))
	if c.XLabel != "" {
		b.WriteString(" " + l.styles.Label.Render(c.XLabel))
	}
	b.WriteString("\n")

	loLabel := util.FormatNumber(lo, 2)
	hiLabel := util.FormatNumber(hi, 2)
	gap := plotWidth - lipgloss.Width(loLabel) - lipgloss.Width(hiLabel)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", axisCol+1))
	b.WriteString(l.styles.Muted.Render(loLabel + strings.Repeat(" ", gap) + hiLabel))

	for _, note := range notes {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", axisCol+1))
		b.WriteString(l.styles.Focus.Render(note))
	}

	if rest := strings.TrimRight(strings.Join(lines[rows:], "\n"), "\n "); rest != "" {
		b.WriteString("\n")
		b.WriteString(rest)
	}

	return b.String()
}

// axisColumn returns the display column of the y axis in a plot row.
func axisColumn(line string) int {
	idx := strings.IndexAny(line, "┤┼")
	if idx < 0 {
		return 0
	}
	return lipgloss.Width(line[:idx])
}

// markerColumn maps x onto [0, width) and reports whether it was in range.
func markerColumn(x, lo, hi float64, width int) (int, bool) {
	if hi <= lo || width <= 1 {
		return 0, x == lo
	}
	inside := x >= lo && x <= hi
	ratio := (x - lo) / (hi - lo)
	ratio = math.Max(0, math.Min(1, ratio))
	return int(math.Round(ratio * float64(width-1))), inside
}

// precisionFor drops decimals on the y labels when values are large.
func precisionFor(data [][]float64) uint {
	peak := 0.0
	for _, ys := range data {
		for _, y := range ys {
			peak = math.Max(peak, math.Abs(y))
		}
	}
	switch {
	case peak >= 10000:
		return 0
	case peak >= 100:
		return 1
	}
	return 2
}

// BarChart renders horizontal bars scaled to the largest value.
type BarChart struct {
	width  int
	styles Styles
}

// NewBarChart creates a bar chart renderer for the given total width.
func NewBarChart(width int) *BarChart {
	return &BarChart{width: width, styles: DefaultStyles()}
}

// SetStyles replaces the chart palette.
func (bc *BarChart) SetStyles(s Styles) {
	bc.styles = s
}

// SetWidth changes the drawing width.
func (bc *BarChart) SetWidth(width int) {
	bc.width = width
}

// Render draws c. A nil chart renders as "".
func (bc *BarChart) Render(c *models.BarChart) string {
	if c == nil || len(c.Bars) == 0 {
		return ""
	}

	labelWidth := 0
	values := make([]string, len(c.Bars))
	valueWidth := 0
	for i, bar := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		values[i] = util.FormatNumber(bar.Value, 2)
		valueWidth = max(valueWidth, lipgloss.Width(values[i]))
	}

	barSpace := bc.width - labelWidth - valueWidth - 4
	if barSpace < 10 {
		barSpace = 10
	}
	peak := c.Max()

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(bc.styles.Title.Render(c.Title))
		b.WriteString("\n")
	}
	if c.YLabel != "" {
		b.WriteString(bc.styles.Label.Render(c.YLabel))
		b.WriteString("\n")
	}

	for i, bar := range c.Bars {
		n := 0
		if peak > 0 && bar.Value > 0 {
			n = int(math.Round(bar.Value / peak * float64(barSpace)))
		}
		style := bc.styles.Bar
		if i%2 == 1 {
			style = bc.styles.BarAlt
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s%s %s",
			bc.styles.Label.Render(PadRight(bar.Label, labelWidth)),
			style.Render(strings.Repeat("█", n)),
			strings.Repeat(" ", barSpace-n),
			bc.styles.Value.Render(PadLeft(values[i], valueWidth)),
		)
	}

	return b.String()
}

// PadRight pads s with spaces to width display columns.
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft pads s on the left with spaces to width display columns.
func PadLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
