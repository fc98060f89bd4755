package dirfs

import (
	"os"
	"path/filepath"
)

// FS is the filesystem surface the navigator depends on. The lister and the
// navigation state machine never call the os package directly — they go
// through this interface, which makes failure paths testable via fakes.
type FS interface {
	// ReadDir enumerates the immediate children of path.
	ReadDir(path string) ([]os.DirEntry, error)

	// Stat follows symlinks and returns info for the target.
	Stat(path string) (os.FileInfo, error)

	// Resolve returns the absolute path with all symlinks evaluated.
	Resolve(path string) (string, error)

	// Home returns the user's home directory.
	Home() (string, error)

	// Cwd returns the process working directory.
	Cwd() (string, error)
}

// OSFS is the os-backed FS used in production.
type OSFS struct{}

func (OSFS) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (OSFS) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }
func (OSFS) Home() (string, error)                      { return os.UserHomeDir() }
func (OSFS) Cwd() (string, error)                       { return os.Getwd() }

func (OSFS) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Normalize makes path absolute and cleans it. The result never carries a
// trailing separator except at the filesystem root.
func Normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}
