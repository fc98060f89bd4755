package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/render"
)

// Theme holds all colours for the application.
// Inspired by Zed's default dark palette (Catppuccin Mocha).
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Directory lipgloss.Color
	File      lipgloss.Color
	Symlink   lipgloss.Color
	Timestamp lipgloss.Color
	FileSize  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// DarkTheme returns the default Zed-inspired dark theme.
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),
		Accent:    lipgloss.Color("#f5c2e7"),

		Directory: lipgloss.Color("#89b4fa"),
		File:      lipgloss.Color("#cdd6f4"),
		Symlink:   lipgloss.Color("#89dceb"),
		Timestamp: lipgloss.Color("#9399b2"),
		FileSize:  lipgloss.Color("#f9e2af"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),
	}
}

// LightTheme returns a light palette for light editor themes.
func LightTheme() Theme {
	t := DarkTheme()
	t.Bg = lipgloss.Color("#eff1f5")
	t.Surface = lipgloss.Color("#e6e9ef")
	t.SurfaceHover = lipgloss.Color("#dce0e8")
	t.Border = lipgloss.Color("#bcc0cc")
	t.Text = lipgloss.Color("#4c4f69")
	t.TextMuted = lipgloss.Color("#6c6f85")
	t.TextSubtle = lipgloss.Color("#8c8fa1")
	t.TextInverse = lipgloss.Color("#eff1f5")
	t.Directory = lipgloss.Color("#1e66f5")
	t.File = lipgloss.Color("#4c4f69")
	t.Symlink = lipgloss.Color("#179299")
	t.Timestamp = lipgloss.Color("#6c6f85")
	t.FileSize = lipgloss.Color("#df8e1d")
	return t
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style

	// Listing
	Header       lipgloss.Style
	DirName      lipgloss.Style
	FileName     lipgloss.Style
	LinkName     lipgloss.Style
	DirMarker    lipgloss.Style
	FileMarker   lipgloss.Style
	FileSize     lipgloss.Style
	Timestamp    lipgloss.Style
	ListSelected lipgloss.Style

	// Text
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.HelpBar = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)

	s.Header = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.DirName = lipgloss.NewStyle().Foreground(t.Directory).Bold(true)
	s.FileName = lipgloss.NewStyle().Foreground(t.File)
	s.LinkName = lipgloss.NewStyle().Foreground(t.Symlink).Italic(true)
	s.DirMarker = lipgloss.NewStyle().Foreground(t.Directory)
	s.FileMarker = lipgloss.NewStyle().Foreground(t.TextSubtle)
	s.FileSize = lipgloss.NewStyle().Foreground(t.FileSize)
	s.Timestamp = lipgloss.NewStyle().Foreground(t.Timestamp)
	s.ListSelected = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}

// StylesForTheme maps a configured theme name to styles.
func StylesForTheme(name string) Styles {
	if name == "light" {
		return NewStyles(LightTheme())
	}
	return DefaultStyles()
}

// StyleFor maps a core style name to its lipgloss style. Link is layered
// after the name style, so later-wins resolution applies: a symlinked
// directory renders with the link style.
func (s Styles) StyleFor(st render.Style) lipgloss.Style {
	switch st {
	case render.StyleHeader:
		return s.Header
	case render.StyleDirMarker:
		return s.DirMarker
	case render.StyleFileMarker:
		return s.FileMarker
	case render.StyleDirName:
		return s.DirName
	case render.StyleFileName:
		return s.FileName
	case render.StyleLink:
		return s.LinkName
	case render.StyleSize:
		return s.FileSize
	case render.StyleTime:
		return s.Timestamp
	default:
		return s.Body
	}
}
