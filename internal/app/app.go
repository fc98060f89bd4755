package app

import (
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/common"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/config"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui/components"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui/views"
)

// Retargeter re-points the filesystem watcher when the browser changes
// directory. Satisfied by *watcher.Watcher; nil disables watching.
type Retargeter interface {
	Retarget(dir string) error
}

// Model is the top-level Bubbletea model: one browser view, a status bar,
// and a help overlay.
type Model struct {
	cfg     *config.Config
	styles  ui.Styles
	keys    KeyMap
	browser *views.Browser
	watch   Retargeter

	width    int
	height   int
	showHelp bool

	statusMsg string
	statusErr bool
	statusExp time.Time
}

// New creates the application model.
func New(cfg *config.Config, browser *views.Browser, watch Retargeter) Model {
	return Model{
		cfg:     cfg,
		styles:  ui.StylesForTheme(cfg.Theme),
		keys:    DefaultKeyMap(),
		browser: browser,
		watch:   watch,
	}
}

// Init is a no-op: the navigator performed its initial listing before the
// program started, and the watcher is already pointed at the start path.
func (m Model) Init() tea.Cmd { return nil }

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.browser.SetSize(m.width, m.contentHeight())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.browser.Update(common.RefreshMsg{})
		}
		if m.showHelp {
			return m, nil
		}
		return m, m.browser.Update(msg)

	case tea.MouseMsg:
		return m, m.browser.Update(msg)

	case common.RefreshMsg:
		return m, m.browser.Update(msg)

	case common.DirChangedMsg:
		if m.watch != nil {
			if err := m.watch.Retarget(msg.Path); err != nil {
				return m, common.CmdErr(err)
			}
		}
		return m, nil

	case common.OpenFileMsg:
		return m, m.openFile(msg.Path)

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil
	}

	return m, nil
}

// openFile suspends the TUI and hands the file to the configured editor.
// When the editor is a GUI command (like the Zed CLI) it returns right away
// and the TUI resumes immediately.
func (m Model) openFile(path string) tea.Cmd {
	editor := m.cfg.ResolveEditor()
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.CmdRefresh()
	})
}

// View renders the entire UI. This is a pure function — no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", components.HelpSections(), m.width, m.height)
	}

	content := lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).Render(m.browser.View())

	barData := components.StatusBarData{
		Path:       m.browser.Path(),
		EntryCount: m.browser.EntryCount(),
		ShowHidden: m.browser.ShowHidden(),
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	if !m.hintVisible() {
		return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, m.hintBar(), statusBar)
}

// hintBar is the one-line key reference above the status bar.
func (m Model) hintBar() string {
	hints := make([]string, 0, 5)
	for _, e := range m.browser.ShortHelp() {
		hints = append(hints, ui.RenderKeyValue(m.styles, e.Key, e.Desc))
	}
	hints = append(hints, ui.RenderKeyValue(m.styles, "?", "help"))
	return m.styles.HelpBar.MaxWidth(m.width).Render(strings.Join(hints, "   "))
}

func (m Model) hintVisible() bool {
	return m.height >= 8 && m.width >= 60
}

func (m Model) contentHeight() int {
	h := m.height - 1 // status bar
	if m.hintVisible() {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}
