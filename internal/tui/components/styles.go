package components

import "github.com/charmbracelet/lipgloss"

// Styles is the palette shared by every component. The TUI theme builds one
// from the configured color scheme.
type Styles struct {
	Label    lipgloss.Style
	Value    lipgloss.Style
	Focus    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
	Row      lipgloss.Style
	RowAlt   lipgloss.Style
	Border   lipgloss.Style
	Bar      lipgloss.Style
	BarAlt   lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the green phosphor palette.
func DefaultStyles() Styles {
	return Styles{
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		Focus:    lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#006600")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true),
		Row:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		RowAlt:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		BarAlt:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true),
	}
}
