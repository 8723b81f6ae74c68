// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
	Align lipgloss.Position
}

// Table is a read-only table used for result summaries.
type Table struct {
	columns []Column
	rows    [][]string
	styles  Styles
}

// NewTable creates a new table with the given columns.
func NewTable(columns []Column) *Table {
	return &Table{
		columns: columns,
		rows:    [][]string{},
		styles:  DefaultStyles(),
	}
}

// NewKeyValueTable creates a two-column metric/value table.
func NewKeyValueTable(keyTitle, valueTitle string) *Table {
	return NewTable([]Column{
		{Title: keyTitle, Width: 28},
		{Title: valueTitle, Width: 22, Align: lipgloss.Right},
	})
}

// SetRows sets the table data.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
}

// SetStyles replaces the table palette.
func (t *Table) SetStyles(s Styles) {
	t.styles = s
}

// Render renders the table.
func (t *Table) Render() string {
	var b strings.Builder

	totalWidth := 0
	for _, col := range t.columns {
		totalWidth += col.Width + 3
	}

	b.WriteString(t.renderRow(t.headers(), t.styles.Header))
	b.WriteString("\n")
	b.WriteString(t.styles.Border.Render(strings.Repeat("-", totalWidth)))

	for i, row := range t.rows {
		style := t.styles.Row
		if i%2 == 1 {
			style = t.styles.RowAlt
		}
		b.WriteString("\n")
		b.WriteString(t.renderRow(row, style))
	}

	return b.String()
}

func (t *Table) headers() []string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Title
	}
	return headers
}

func (t *Table) renderRow(cells []string, style lipgloss.Style) string {
	parts := make([]string, 0, len(t.columns))

	for i, col := range t.columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		if w := lipgloss.Width(cell); w > col.Width {
			runes := []rune(cell)
			cell = string(runes[:max(col.Width-1, 0)]) + "…"
		}

		pad := col.Width - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		switch col.Align {
		case lipgloss.Right:
			cell = strings.Repeat(" ", pad) + cell
		case lipgloss.Center:
			left := pad / 2
			cell = strings.Repeat(" ", left) + cell + strings.Repeat(" ", pad-left)
		default:
			cell = cell + strings.Repeat(" ", pad)
		}

		parts = append(parts, style.Render(cell))
	}

	return " " + strings.Join(parts, " | ") + " "
}

// Empty returns true if the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}
