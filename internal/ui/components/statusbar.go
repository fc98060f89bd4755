package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Path       string // current directory
	EntryCount int
	ShowHidden bool
	Message    string // transient info/error message
	IsError    bool
}

// RenderStatusBar renders the bottom status bar with clear visual sections
// separated by dim vertical bars.
//
// Wide (>= 60):   ~/src/project  │  14 items  │  ·hidden          zdv
// Narrow (< 60):  ~/src/project  │  14 items
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	pathStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	maxPath := width / 2
	if maxPath < 10 {
		maxPath = 10
	}
	pathSection := " " + pathStyle.Render(ui.Truncate(data.Path, maxPath))

	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	countSection := sep + countStyle.Render(fmt.Sprintf("%d items", data.EntryCount))

	var hiddenSection string
	if data.ShowHidden && width >= 50 {
		badge := lipgloss.NewStyle().Foreground(t.Warning).Render("·hidden")
		hiddenSection = sep + badge
	}

	left := pathSection + countSection + hiddenSection

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	} else if width >= 60 {
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).Render("zdv") + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - leftW - rightW
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	content := left + strings.Repeat(" ", gap) + right

	return styles.StatusBar.Width(width).Render(content)
}
