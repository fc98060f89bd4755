package dirfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// List enumerates the immediate children of path and converts each into an
// Entry. Hidden names (leading dot) are filtered out unless showHidden is
// set; that is the only filtering rule. Symbolic links are resolved: the
// entry's Type reflects the link target, and Link records that the entry was
// a symlink. A link whose target cannot be stat'ed is treated as a file and
// keeps the Link flag.
//
// On any scan failure the error is returned and no partial list escapes —
// callers keep whatever listing they were showing before.
func List(fsys FS, path string, showHidden bool) ([]Entry, error) {
	children, err := fsys.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("scan directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(path, name)

		if child.Type()&os.ModeSymlink != 0 {
			entries = append(entries, resolveLink(fsys, name, full, child))
			continue
		}

		info, err := child.Info()
		if err != nil {
			// Entry vanished between readdir and stat. Skip it.
			continue
		}

		e := Entry{
			Name:    name,
			Type:    TypeFile,
			MTime:   info.ModTime().Unix(),
			AbsPath: full,
		}
		if child.IsDir() {
			e.Type = TypeDir
			e.Name += string(filepath.Separator)
		} else {
			e.Size = humanize.IBytes(uint64(info.Size()))
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// resolveLink builds the Entry for a symlink child. Type comes from the link
// target; MTime and size fall back to the link itself when the target is
// gone.
func resolveLink(fsys FS, name, full string, child os.DirEntry) Entry {
	linkType := TypeFile
	e := Entry{
		Name:    name,
		Type:    TypeFile,
		AbsPath: full,
	}

	target, err := fsys.Stat(full)
	if err != nil {
		// Broken link: keep it visible as a file so the user can see and
		// delete it from the host editor.
		if info, lerr := child.Info(); lerr == nil {
			e.MTime = info.ModTime().Unix()
		}
		e.Link = &linkType
		return e
	}

	if resolved, rerr := fsys.Resolve(full); rerr == nil {
		e.AbsPath = resolved
	}
	e.MTime = target.ModTime().Unix()
	if target.IsDir() {
		linkType = TypeDir
		e.Type = TypeDir
		e.Name += string(filepath.Separator)
	} else {
		e.Size = humanize.IBytes(uint64(target.Size()))
	}
	e.Link = &linkType
	return e
}

// Sort orders entries in place: directories before files, then
// case-insensitive name order. The sort is stable, so entries whose names
// compare equal keep their enumeration order across re-sorts.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
