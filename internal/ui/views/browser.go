// Package views contains the directory browser view: the adapter that feeds
// keyboard and mouse events into the navigation core and renders its layout
// and highlight spans through lipgloss. All navigation runs synchronously
// inside Update — directory scans are local and fast, and keeping them on
// the event loop guarantees at most one transition is ever in flight.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/common"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/config"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/nav"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/render"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui/components"
)

// KeyMap defines the browser's key bindings.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Enter        key.Binding
	Parent       key.Binding
	GoHome       key.Binding
	GoCwd        key.Binding
	ToggleHidden key.Binding
}

// NewKeyMap builds the browser key map from the configured bindings, adding
// fixed aliases (arrows, vim synonyms) that are never remapped.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", kb.Up)),
		Down:         key.NewBinding(key.WithKeys("down", kb.Down)),
		PageUp:       key.NewBinding(key.WithKeys("pgup", kb.PageUp)),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", kb.PageDown)),
		Top:          key.NewBinding(key.WithKeys("home", kb.Top)),
		Bottom:       key.NewBinding(key.WithKeys("end", kb.Bottom)),
		Enter:        key.NewBinding(key.WithKeys(kb.Enter, "l")),
		Parent:       key.NewBinding(key.WithKeys(kb.Parent, "-", "backspace")),
		GoHome:       key.NewBinding(key.WithKeys(kb.GoHome)),
		GoCwd:        key.NewBinding(key.WithKeys(kb.GoCwd)),
		ToggleHidden: key.NewBinding(key.WithKeys(kb.ToggleHidden)),
	}
}

// Browser renders one directory listing and drives the navigator.
type Browser struct {
	nav    *nav.Navigator
	styles ui.Styles
	keys   KeyMap
	width  int
	height int
	offset int // first visible listing row − 1
}

// NewBrowser creates the browser view around an initialised navigator.
func NewBrowser(n *nav.Navigator, styles ui.Styles, kb config.KeyBindings) *Browser {
	return &Browser{nav: n, styles: styles, keys: NewKeyMap(kb)}
}

// SetSize updates the content area dimensions.
func (b *Browser) SetSize(w, h int) {
	b.width = w
	b.height = h
	b.ensureVisible()
}

// Path returns the navigator's current directory.
func (b *Browser) Path() string { return b.nav.Path() }

// EntryCount returns the number of listed entries.
func (b *Browser) EntryCount() int { return len(b.nav.Entries()) }

// ShowHidden reports whether hidden files are listed.
func (b *Browser) ShowHidden() bool { return b.nav.ShowHidden() }

// Update processes messages and returns follow-up commands.
func (b *Browser) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case common.RefreshMsg:
		if err := b.nav.Refresh(); err != nil {
			return common.CmdErr(err)
		}
		b.ensureVisible()
		return nil

	case tea.MouseMsg:
		return b.handleMouse(msg)

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keys.Up):
		b.moveCursor(-1)
	case key.Matches(msg, b.keys.Down):
		b.moveCursor(1)
	case key.Matches(msg, b.keys.PageUp):
		b.moveCursor(-b.height / 2)
	case key.Matches(msg, b.keys.PageDown):
		b.moveCursor(b.height / 2)
	case key.Matches(msg, b.keys.Top):
		b.nav.SetCursorRow(nav.FirstEntryRow)
		b.ensureVisible()
	case key.Matches(msg, b.keys.Bottom):
		b.nav.SetCursorRow(b.nav.LastRow())
		b.ensureVisible()

	case key.Matches(msg, b.keys.Enter):
		return b.transition(func() (string, error) { return b.nav.Enter() })
	case key.Matches(msg, b.keys.Parent):
		return b.transition(func() (string, error) { return "", b.nav.Up() })
	case key.Matches(msg, b.keys.GoHome):
		return b.transition(func() (string, error) { return "", b.nav.GoHome() })
	case key.Matches(msg, b.keys.GoCwd):
		return b.transition(func() (string, error) { return "", b.nav.GoCwd() })

	case key.Matches(msg, b.keys.ToggleHidden):
		if err := b.nav.ToggleHidden(); err != nil {
			return common.CmdErr(err)
		}
		b.ensureVisible()
		if b.nav.ShowHidden() {
			return common.CmdInfo("showing hidden files")
		}
		return common.CmdInfo("hiding hidden files")
	}
	return nil
}

// transition runs one navigating action. A returned file path becomes an
// open request; a directory change re-points the watcher. On failure the
// navigator kept its pre-transition state, so only the error surfaces.
func (b *Browser) transition(action func() (string, error)) tea.Cmd {
	before := b.nav.Path()
	openPath, err := action()
	if err != nil {
		return common.CmdErr(err)
	}
	if openPath != "" {
		return common.CmdOpenFile(openPath)
	}
	b.ensureVisible()
	if b.nav.Path() != before {
		b.offset = 0
		b.ensureVisible()
		return common.CmdDirChanged(b.nav.Path())
	}
	return nil
}

func (b *Browser) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		b.moveCursor(-3)
	case tea.MouseButtonWheelDown:
		b.moveCursor(3)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		row := b.offset + msg.Y + 1
		if row >= nav.HeaderRow && row <= b.nav.LastRow() {
			b.nav.SetCursorRow(row)
			return b.transition(func() (string, error) { return b.nav.Enter() })
		}
	}
	return nil
}

func (b *Browser) moveCursor(delta int) {
	b.nav.SetCursorRow(b.nav.CursorRow() + delta)
	b.ensureVisible()
}

// ensureVisible scrolls the viewport so the cursor row stays on screen.
func (b *Browser) ensureVisible() {
	if b.height <= 0 {
		return
	}
	cur := b.nav.CursorRow() - 1 // 0-based listing line
	if cur < b.offset {
		b.offset = cur
	}
	if cur >= b.offset+b.height {
		b.offset = cur - b.height + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// View renders the listing: layout lines styled by the span renderer, with
// the cursor row inverted and a scrollbar when the listing overflows.
func (b *Browser) View() string {
	if b.width == 0 || b.height == 0 {
		return ""
	}

	entries := b.nav.Entries()
	layout := render.NewLayout(b.nav.Path(), entries, b.width)
	spans := render.Spans(entries, layout.TimestampCol)

	total := len(entries) + 1
	lines := make([]string, 0, b.height)
	for i := b.offset; i < total && len(lines) < b.height; i++ {
		var text string
		if i == 0 {
			text = layout.Header
		} else {
			text = layout.Lines[i-1]
		}

		if i+1 == b.nav.CursorRow() {
			lines = append(lines, b.styles.ListSelected.Render(ui.PadRight(text, layout.Width)))
			continue
		}
		lines = append(lines, ui.RenderSpans(b.styles, text, spans[i]))
	}
	for len(lines) < b.height {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	if bar := components.RenderScrollbar(b.styles, b.height, total, b.height, b.scrollPct(total)); bar != "" {
		pad := lipgloss.NewStyle().Width(b.width - 2).Render
		content = lipgloss.JoinHorizontal(lipgloss.Top, pad(content), " "+bar)
	}

	return content
}

func (b *Browser) scrollPct(total int) float64 {
	maxOffset := total - b.height
	if maxOffset <= 0 {
		return 0
	}
	return float64(b.offset) / float64(maxOffset)
}

// ShortHelp returns the browser's help entries.
func (b *Browser) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter / l", Desc: "Enter directory / open file"},
		{Key: "h / -", Desc: "Parent directory"},
		{Key: "~ / @", Desc: "Home / working directory"},
		{Key: ".", Desc: "Toggle hidden files"},
	}
}
