package nav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/dirfs"
)

// fixture builds:
//
//	root/
//	  A/        (a1.txt, a2.txt, a3.txt)
//	  b.txt
//	  .hidden
func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	sub := filepath.Join(root, "A")
	require.NoError(t, os.Mkdir(sub, 0o755))
	for _, f := range []string{"a1.txt", "a2.txt", "a3.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(sub, f), []byte("x"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o644))
	return root
}

func entryNames(n *Navigator) []string {
	out := make([]string, 0, len(n.Entries()))
	for _, e := range n.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func TestNewListsAndSorts(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	assert.Equal(t, root, n.Path())
	assert.Equal(t, []string{"A/", "b.txt"}, entryNames(n))
	assert.Equal(t, FirstEntryRow, n.CursorRow())
}

func TestNewFailsOnUnreadableDir(t *testing.T) {
	_, err := New(dirfs.OSFS{}, filepath.Join(t.TempDir(), "missing"), false)
	require.Error(t, err)
}

func TestEnterDirectoryAndUpRoundTrip(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(FirstEntryRow) // "A/"
	openPath, err := n.Enter()
	require.NoError(t, err)
	assert.Empty(t, openPath)
	assert.Equal(t, filepath.Join(root, "A"), n.Path())
	assert.Equal(t, []string{"a1.txt", "a2.txt", "a3.txt"}, entryNames(n))
	assert.Equal(t, FirstEntryRow, n.CursorRow())

	require.NoError(t, n.Up())
	assert.Equal(t, root, n.Path())

	// The cursor lands on the directory we just came from.
	e, ok := n.EntryAt(n.CursorRow())
	require.True(t, ok)
	assert.Equal(t, "A/", e.Name)
}

func TestEnterFileLeavesStateUntouched(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(FirstEntryRow + 1) // "b.txt"
	openPath, err := n.Enter()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "b.txt"), openPath)
	assert.Equal(t, root, n.Path())
	assert.Equal(t, FirstEntryRow+1, n.CursorRow())
}

func TestEnterOnHeaderNoOps(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(HeaderRow)
	openPath, err := n.Enter()
	require.NoError(t, err)
	assert.Empty(t, openPath)
	assert.Equal(t, root, n.Path())
}

func TestReEnterRestoresSavedCursor(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(FirstEntryRow)
	_, err = n.Enter() // into A/
	require.NoError(t, err)

	n.SetCursorRow(FirstEntryRow + 2) // "a3.txt"
	require.NoError(t, n.Up())

	// Descending back into A/ restores the cursor saved on the way out.
	_, err = n.Enter()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "A"), n.Path())
	assert.Equal(t, FirstEntryRow+2, n.CursorRow())
}

func TestUpAtRootNoOps(t *testing.T) {
	n, err := New(dirfs.OSFS{}, "/", false)
	require.NoError(t, err)

	before := n.Path()
	require.NoError(t, n.Up())
	assert.Equal(t, before, n.Path())
}

func TestToggleHiddenTwiceRestoresListingAndCursor(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(FirstEntryRow + 1) // "b.txt"
	visible := entryNames(n)

	require.NoError(t, n.ToggleHidden())
	assert.Equal(t, []string{"A/", ".hidden", "b.txt"}, entryNames(n))
	e, ok := n.EntryAt(n.CursorRow())
	require.True(t, ok)
	assert.Equal(t, "b.txt", e.Name, "cursor follows the entry, not the row number")

	require.NoError(t, n.ToggleHidden())
	assert.Equal(t, visible, entryNames(n))
	assert.Equal(t, FirstEntryRow+1, n.CursorRow())
}

func TestToggleHiddenKeepsHeaderCursor(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(HeaderRow)
	require.NoError(t, n.ToggleHidden())
	assert.Equal(t, HeaderRow, n.CursorRow())
}

func TestToggleHiddenFallsBackWhenEntryFiltered(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, true)
	require.NoError(t, err)

	// Put the cursor on ".hidden", then filter it out.
	require.Equal(t, []string{"A/", ".hidden", "b.txt"}, entryNames(n))
	n.SetCursorRow(FirstEntryRow + 1)

	require.NoError(t, n.ToggleHidden())
	assert.Equal(t, FirstEntryRow, n.CursorRow())
}

// jumpFS overrides Home and Cwd to point into the fixture tree.
type jumpFS struct {
	dirfs.FS
	home string
	cwd  string
}

func (f jumpFS) Home() (string, error) { return f.home, nil }
func (f jumpFS) Cwd() (string, error)  { return f.cwd, nil }

func TestGoHomeAndGoCwdResetCursor(t *testing.T) {
	root := fixture(t)
	sub := filepath.Join(root, "A")
	fsys := jumpFS{FS: dirfs.OSFS{}, home: sub, cwd: root}

	n, err := New(fsys, root, false)
	require.NoError(t, err)
	n.SetCursorRow(FirstEntryRow + 1)

	require.NoError(t, n.GoHome())
	assert.Equal(t, sub, n.Path())
	assert.Equal(t, FirstEntryRow, n.CursorRow(), "absolute jumps never consult history")

	n.SetCursorRow(FirstEntryRow + 2)
	require.NoError(t, n.GoCwd())
	assert.Equal(t, root, n.Path())
	assert.Equal(t, FirstEntryRow, n.CursorRow())
}

// errFS fails ReadDir for one path, delegating everything else.
type errFS struct {
	dirfs.FS
	fail string
}

func (f errFS) ReadDir(path string) ([]os.DirEntry, error) {
	if path == f.fail {
		return nil, errors.New("permission denied")
	}
	return f.FS.ReadDir(path)
}

func TestFailedEnterKeepsLastGoodListing(t *testing.T) {
	root := fixture(t)
	sub := filepath.Join(root, "A")
	n, err := New(errFS{FS: dirfs.OSFS{}, fail: sub}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(FirstEntryRow) // "A/", which fails to scan
	entriesBefore := entryNames(n)

	_, err = n.Enter()
	require.Error(t, err)

	assert.Equal(t, root, n.Path())
	assert.Equal(t, entriesBefore, entryNames(n))
	assert.Equal(t, FirstEntryRow, n.CursorRow())
}

func TestFailedToggleRollsBackFlag(t *testing.T) {
	root := fixture(t)
	fsys := errFS{FS: dirfs.OSFS{}, fail: root}

	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)
	n.fsys = fsys

	require.Error(t, n.ToggleHidden())
	assert.False(t, n.ShowHidden())
	assert.Equal(t, []string{"A/", "b.txt"}, entryNames(n))
}

func TestRefreshPicksUpNewEntries(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)
	n.SetCursorRow(FirstEntryRow + 1) // "b.txt"

	require.NoError(t, os.WriteFile(filepath.Join(root, "aa.txt"), []byte("x"), 0o644))
	require.NoError(t, n.Refresh())

	assert.Equal(t, []string{"A/", "aa.txt", "b.txt"}, entryNames(n))
	e, ok := n.EntryAt(n.CursorRow())
	require.True(t, ok)
	assert.Equal(t, "b.txt", e.Name)
}

func TestCursorClampsToListing(t *testing.T) {
	root := fixture(t)
	n, err := New(dirfs.OSFS{}, root, false)
	require.NoError(t, err)

	n.SetCursorRow(99)
	assert.Equal(t, n.LastRow(), n.CursorRow())

	n.SetCursorRow(-5)
	assert.Equal(t, HeaderRow, n.CursorRow())
}
