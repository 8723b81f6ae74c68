package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the global key bindings. Every other key goes to the
// active calculator form.
type KeyMap struct {
	// Actions
	Back   Key
	Quit   Key
	Reset  Key
	Submit Key

	// Function keys for module navigation
	F1  Key
	F2  Key
	F3  Key
	F4  Key
	F5  Key
	F10 Key

	// Form navigation
	Tab      Key
	ShiftTab Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Backspace edits inputs, so only esc navigates back.
		Back: Key{
			Keys:    []string{"esc"},
			Help:    "back",
			Enabled: true,
		},
		Quit: Key{
			Keys:    []string{"q", "ctrl+c"},
			Help:    "quit",
			Enabled: true,
		},
		Reset: Key{
			Keys:    []string{"ctrl+r"},
			Help:    "reset form",
			Enabled: true,
		},
		Submit: Key{
			Keys:    []string{"ctrl+s"},
			Help:    "optimize",
			Enabled: true,
		},

		// Function keys
		F1: Key{
			Keys:    []string{"f1"},
			Help:    "Help",
			Enabled: true,
		},
		F2: Key{
			Keys:    []string{"f2"},
			Help:    "Queue",
			Enabled: true,
		},
		F3: Key{
			Keys:    []string{"f3"},
			Help:    "EOQ",
			Enabled: true,
		},
		F4: Key{
			Keys:    []string{"f4"},
			Help:    "Production",
			Enabled: true,
		},
		F5: Key{
			Keys:    []string{"f5"},
			Help:    "Break-even",
			Enabled: true,
		},
		F10: Key{
			Keys:    []string{"f10"},
			Help:    "Quit",
			Enabled: true,
		},

		// Form navigation
		Tab: Key{
			Keys:    []string{"tab", "down"},
			Help:    "next field",
			Enabled: true,
		},
		ShiftTab: Key{
			Keys:    []string{"shift+tab", "up"},
			Help:    "prev field",
			Enabled: true,
		},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message is a quit command.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg) || km.F10.Matches(msg)
}

// IsFunctionKey checks if the key message is a function key.
func (km KeyMap) IsFunctionKey(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.F1, km.F2, km.F3, km.F4, km.F5, km.F10)
}

// FunctionKeyModule returns the module for a function key, or "" when the
// key quits or is not a function key.
func (km KeyMap) FunctionKeyModule(msg tea.KeyMsg) Module {
	switch {
	case km.F1.Matches(msg):
		return ModuleHelp
	case km.F2.Matches(msg):
		return ModuleQueue
	case km.F3.Matches(msg):
		return ModuleEOQ
	case km.F4.Matches(msg):
		return ModuleProduction
	case km.F5.Matches(msg):
		return ModuleBreakEven
	default:
		return ""
	}
}

// StatusBarHelp returns the help text for the status bar.
func (km KeyMap) StatusBarHelp() string {
	return "[F1]Help [F2]Queue [F3]EOQ [F4]Production [F5]Break-even [Ctrl+R]Reset [F10]Quit"
}
