package config

// KeyBindings defines the mapping of actions to keys.
// Kept separate so it can later be made configurable via config file.
type KeyBindings struct {
	Quit         string
	Help         string
	Up           string
	Down         string
	PageUp       string
	PageDown     string
	Top          string
	Bottom       string
	Enter        string
	Parent       string
	GoHome       string
	GoCwd        string
	ToggleHidden string
	Refresh      string
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:         "q",
		Help:         "?",
		Up:           "k",
		Down:         "j",
		PageUp:       "ctrl+u",
		PageDown:     "ctrl+d",
		Top:          "g",
		Bottom:       "G",
		Enter:        "enter",
		Parent:       "h",
		GoHome:       "~",
		GoCwd:        "@",
		ToggleHidden: ".",
		Refresh:      "r",
	}
}
