package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetBreakpoint(t *testing.T) {
	tests := []struct {
		width    int
		expected LayoutBreakpoint
	}{
		{40, BreakpointNarrow},
		{59, BreakpointNarrow},
		{60, BreakpointMedium},
		{80, BreakpointMedium},
		{99, BreakpointMedium},
		{100, BreakpointWide},
		{140, BreakpointWide},
		{200, BreakpointWide},
	}

	for _, tt := range tests {
		result := GetBreakpoint(tt.width)
		if result != tt.expected {
			t.Errorf("GetBreakpoint(%d) = %d, want %d", tt.width, result, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		expected string
	}{
		{"hello", 10, "hello"},      // fits
		{"hello", 5, "hello"},       // exact fit
		{"hello world", 5, "hell…"}, // truncated
		{"hi", 0, ""},               // zero width
		{"hello world", 3, "hel"},   // very short (<=3)
		{"hello world", 1, "h"},     // single char
		{"λλλλλλ", 4, "λλλ…"},       // runes
	}

	for _, tt := range tests {
		result := Truncate(tt.input, tt.maxWidth)
		if result != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, result, tt.expected)
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		termWidth int
		minWidth  int
		maxWidth  int
		expected  int
	}{
		{80, 40, 120, 80},   // normal
		{30, 40, 120, 40},   // below min, clamp up
		{200, 40, 120, 120}, // above max, clamp down
		{80, 40, 0, 80},     // no max
	}

	for _, tt := range tests {
		result := ContentWidth(tt.termWidth, tt.minWidth, tt.maxWidth)
		if result != tt.expected {
			t.Errorf("ContentWidth(%d, %d, %d) = %d, want %d",
				tt.termWidth, tt.minWidth, tt.maxWidth, result, tt.expected)
		}
	}
}

func TestContentHeight(t *testing.T) {
	tests := []struct {
		termHeight  int
		chromeLines int
		expected    int
	}{
		{24, 6, 18}, // normal
		{40, 6, 34}, // tall terminal
		{8, 6, 5},   // very short, clamps to 5
		{5, 6, 5},   // shorter than chrome, clamps to 5
	}

	for _, tt := range tests {
		result := ContentHeight(tt.termHeight, tt.chromeLines)
		if result != tt.expected {
			t.Errorf("ContentHeight(%d, %d) = %d, want %d",
				tt.termHeight, tt.chromeLines, result, tt.expected)
		}
	}
}

func TestSideBySide_Horizontal(t *testing.T) {
	result := SideBySide("AAA\nAA", "BBB", 80, 4)

	if strings.Contains(result, "\n\n") {
		t.Error("Expected horizontal layout, got vertical (double newline found)")
	}
	first := strings.Split(result, "\n")[0]
	if first != "AAA    BBB" {
		t.Errorf("first line = %q, want %q", first, "AAA    BBB")
	}
}

func TestSideBySide_Vertical(t *testing.T) {
	left := strings.Repeat("A", 50)
	right := strings.Repeat("B", 50)
	result := SideBySide(left, right, 60, 4)

	if !strings.Contains(result, "\n\n") {
		t.Error("Expected vertical layout (double newline) when content doesn't fit")
	}
}

func TestPanel(t *testing.T) {
	theme := NewTheme("green_phosphor")
	out := theme.Panel("KEYS", "F1 Help", 30)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Panel() rendered %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], " KEYS ") {
		t.Errorf("top border should carry the title: %q", lines[0])
	}
	if !strings.Contains(lines[1], "F1 Help") {
		t.Errorf("body line = %q", lines[1])
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
}
