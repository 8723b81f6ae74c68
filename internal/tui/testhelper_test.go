package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ordash/ordash/internal/config"
	"github.com/ordash/ordash/internal/testutil"
)

// newTestApp creates an App from the default configuration with logging
// discarded. The window is set to 120x40 and marked ready.
func newTestApp(t *testing.T, overrides ...func(*config.Config)) *App {
	t.Helper()

	app := newAppFromConfig(t, overrides...)

	// Simulate a window size message to make the app ready
	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

func newAppFromConfig(t *testing.T, overrides ...func(*config.Config)) *App {
	t.Helper()

	cfg := config.Default()
	for _, o := range overrides {
		o(cfg)
	}

	app, err := New(cfg, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("creating app: %v", err)
	}
	return app
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}
