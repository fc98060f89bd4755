package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/config"
)

// KeyMap defines the global keybindings. Navigation keys live on the browser
// view; only keys that make sense regardless of view state are global.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	Back    key.Binding
}

// NewKeyMap builds the global key map from the configured bindings.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys(kb.Quit, "ctrl+c"), key.WithHelp(kb.Quit, "quit")),
		Help:    key.NewBinding(key.WithKeys(kb.Help), key.WithHelp(kb.Help, "help")),
		Refresh: key.NewBinding(key.WithKeys(kb.Refresh, "ctrl+r"), key.WithHelp(kb.Refresh, "refresh")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close overlay")),
	}
}

// DefaultKeyMap returns the key map built from the default bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyBindings())
}
