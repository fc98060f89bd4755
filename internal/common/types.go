package common

import tea "github.com/charmbracelet/bubbletea"

// ── Custom messages ─────────────────────────────────────────────────────────

// RefreshMsg signals the browser to relist the current directory.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed in the status bar.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// OpenFileMsg asks the host to open a file in the configured editor.
type OpenFileMsg struct{ Path string }

// DirChangedMsg announces that the browser moved to a new directory, so the
// watcher can be re-pointed at it.
type DirChangedMsg struct{ Path string }

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// CmdOpenFile creates a tea.Cmd that sends an OpenFileMsg.
func CmdOpenFile(path string) tea.Cmd {
	return func() tea.Msg { return OpenFileMsg{Path: path} }
}

// CmdDirChanged creates a tea.Cmd that sends a DirChangedMsg.
func CmdDirChanged(path string) tea.Cmd {
	return func() tea.Msg { return DirChangedMsg{Path: path} }
}
