// Package dirfs models one level of a directory tree: the Entry record for a
// single filesystem child, the lister that enumerates a directory into
// entries, and the sorter that orders them for display. It is pure data and
// local I/O — no TUI imports, so the whole package is testable against a
// temp directory or a fake FS.
package dirfs

// EntryType classifies an entry after symlink resolution.
type EntryType int

const (
	TypeFile EntryType = iota
	TypeDir
)

// Entry is the metadata record for one child of the listed directory.
// Entries are immutable once built; every listing produces a fresh slice.
type Entry struct {
	// Name is the display name. Directories (including symlinks that
	// resolve to directories) carry a trailing "/".
	Name string

	// Type is the entry's type after symlink resolution.
	Type EntryType

	// Link is non-nil when the entry is a symbolic link. It records the
	// resolved target's type and exists purely as a rendering flag.
	Link *EntryType

	// MTime is the modification time in seconds since the epoch.
	MTime int64

	// Size is a humanized size string ("4.2 KiB"). Empty for directories;
	// layout tolerates its absence.
	Size string

	// AbsPath is the fully resolved absolute path, used for opening and
	// entering. Never carries a trailing separator.
	AbsPath string
}

// IsDir reports whether the entry resolves to a directory.
func (e Entry) IsDir() bool {
	return e.Type == TypeDir
}

// IsLink reports whether the entry was a symbolic link before resolution.
func (e Entry) IsLink() bool {
	return e.Link != nil
}

// IsHidden reports whether the entry name starts with a dot.
func (e Entry) IsHidden() bool {
	return len(e.Name) > 0 && e.Name[0] == '.'
}
