// Package nav implements the navigation state machine: the current path, its
// entry listing, the show-hidden toggle, and the history used to restore
// cursor positions as the user moves up and down the tree. All transitions
// run synchronously; on any listing failure the navigator stays exactly
// where it was, so the host never shows a blank or half-updated listing.
package nav

import (
	"path/filepath"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/dirfs"
)

// Row constants. The listing is 1-based: row 1 is the header (the current
// path), row 2 is the first entry. The header is never a valid target for
// Enter, so operations guard on it.
const (
	HeaderRow     = 1
	FirstEntryRow = 2
)

// Frame records the cursor position in a previously visited directory.
type Frame struct {
	Path      string
	CursorRow int
}

// Navigator is the sole owner of the current path and entry list. It is not
// safe for concurrent use; the host's event dispatch serializes actions.
type Navigator struct {
	fsys       dirfs.FS
	path       string
	entries    []dirfs.Entry
	showHidden bool
	cursorRow  int

	// history grows on every navigating action and is scanned, never
	// popped, to find saved cursor positions for revisited paths.
	history []Frame
}

// New creates a navigator rooted at path and performs the initial listing.
func New(fsys dirfs.FS, path string, showHidden bool) (*Navigator, error) {
	n := &Navigator{
		fsys:       fsys,
		path:       dirfs.Normalize(path),
		showHidden: showHidden,
		cursorRow:  FirstEntryRow,
	}
	entries, err := n.list(n.path)
	if err != nil {
		return nil, err
	}
	n.entries = entries
	n.clampCursor()
	return n, nil
}

// Path returns the current absolute directory path.
func (n *Navigator) Path() string { return n.path }

// Entries returns the current listing snapshot. Callers must not mutate it.
func (n *Navigator) Entries() []dirfs.Entry { return n.entries }

// ShowHidden reports whether hidden files are currently listed.
func (n *Navigator) ShowHidden() bool { return n.showHidden }

// CursorRow returns the 1-based cursor row (row 1 = header).
func (n *Navigator) CursorRow() int { return n.cursorRow }

// LastRow returns the last valid row of the listing.
func (n *Navigator) LastRow() int { return HeaderRow + len(n.entries) }

// SetCursorRow moves the cursor, clamping into [HeaderRow, LastRow].
func (n *Navigator) SetCursorRow(row int) {
	n.cursorRow = row
	n.clampCursor()
}

// EntryAt returns the entry displayed on the given row, if any.
func (n *Navigator) EntryAt(row int) (dirfs.Entry, bool) {
	i := row - FirstEntryRow
	if i < 0 || i >= len(n.entries) {
		return dirfs.Entry{}, false
	}
	return n.entries[i], true
}

// Enter descends into the directory under the cursor. For a file it returns
// the absolute path for the host to open and leaves the navigation state
// untouched. On the header row it no-ops.
func (n *Navigator) Enter() (openPath string, err error) {
	e, ok := n.EntryAt(n.cursorRow)
	if !ok {
		return "", nil
	}
	if !e.IsDir() {
		return e.AbsPath, nil
	}

	target := dirfs.Normalize(e.AbsPath)
	entries, err := n.list(target)
	if err != nil {
		return "", err
	}

	n.push()
	n.path = target
	n.entries = entries
	n.cursorRow = n.savedCursor(target)
	n.clampCursor()
	return "", nil
}

// Up ascends to the parent directory and places the cursor on the row of the
// child just left, so the user lands back on the directory they came from.
// At the filesystem root it no-ops.
func (n *Navigator) Up() error {
	parent := filepath.Dir(n.path)
	if parent == n.path {
		return nil
	}

	childName := filepath.Base(n.path) + string(filepath.Separator)

	entries, err := n.list(parent)
	if err != nil {
		return err
	}

	n.push()
	n.path = parent
	n.entries = entries
	n.cursorRow = rowOf(entries, childName)
	n.clampCursor()
	return nil
}

// GoHome jumps to the user's home directory. Absolute jumps always reset the
// cursor to the first entry — no history lookup.
func (n *Navigator) GoHome() error {
	home, err := n.fsys.Home()
	if err != nil {
		return err
	}
	return n.jump(home)
}

// GoCwd jumps to the process working directory.
func (n *Navigator) GoCwd() error {
	cwd, err := n.fsys.Cwd()
	if err != nil {
		return err
	}
	return n.jump(cwd)
}

func (n *Navigator) jump(target string) error {
	target = dirfs.Normalize(target)
	entries, err := n.list(target)
	if err != nil {
		return err
	}
	n.push()
	n.path = target
	n.entries = entries
	n.cursorRow = FirstEntryRow
	n.clampCursor()
	return nil
}

// ToggleHidden flips the hidden-file filter and relists the current path,
// keeping the cursor on the same named entry where possible. If the listing
// fails the toggle is rolled back.
func (n *Navigator) ToggleHidden() error {
	n.showHidden = !n.showHidden
	if err := n.Refresh(); err != nil {
		n.showHidden = !n.showHidden
		return err
	}
	return nil
}

// Refresh relists the current path without touching history, keeping the
// cursor on the same named entry (the header stays the header). An entry
// that disappeared sends the cursor back to the first entry row.
func (n *Navigator) Refresh() error {
	var keep string
	if e, ok := n.EntryAt(n.cursorRow); ok {
		keep = e.Name
	}

	entries, err := n.list(n.path)
	if err != nil {
		return err
	}

	n.entries = entries
	if n.cursorRow != HeaderRow {
		n.cursorRow = rowOf(entries, keep)
	}
	n.clampCursor()
	return nil
}

// list reads and sorts a directory. Failures leave the navigator untouched
// because nothing is assigned until the listing succeeds.
func (n *Navigator) list(path string) ([]dirfs.Entry, error) {
	entries, err := dirfs.List(n.fsys, path, n.showHidden)
	if err != nil {
		return nil, err
	}
	dirfs.Sort(entries)
	return entries, nil
}

// push records the pre-transition position. Called before the path changes.
func (n *Navigator) push() {
	n.history = append(n.history, Frame{Path: n.path, CursorRow: n.cursorRow})
}

// savedCursor returns the most recent cursor recorded for path, or the first
// entry row if the path was never visited.
func (n *Navigator) savedCursor(path string) int {
	for i := len(n.history) - 1; i >= 0; i-- {
		if n.history[i].Path == path {
			return n.history[i].CursorRow
		}
	}
	return FirstEntryRow
}

// rowOf returns the row whose entry name matches, or the first entry row.
func rowOf(entries []dirfs.Entry, name string) int {
	if name != "" {
		for i, e := range entries {
			if e.Name == name {
				return FirstEntryRow + i
			}
		}
	}
	return FirstEntryRow
}

func (n *Navigator) clampCursor() {
	if n.cursorRow > n.LastRow() {
		n.cursorRow = n.LastRow()
	}
	if n.cursorRow < HeaderRow {
		n.cursorRow = HeaderRow
	}
}
