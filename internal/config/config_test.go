package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.ShowHiddenFiles)
	assert.Empty(t, cfg.Editor)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoadFromConfigFile(t *testing.T) {
	xdg := t.TempDir()
	dir := filepath.Join(xdg, "zdv")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	yaml := "show_hidden_files: true\neditor: vim\ntheme: light\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("XDG_CONFIG_HOME", xdg)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.ShowHiddenFiles)
	assert.Equal(t, "vim", cfg.Editor)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	xdg := t.TempDir()
	dir := filepath.Join(xdg, "zdv")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644))

	t.Setenv("XDG_CONFIG_HOME", xdg)
	chdir(t, t.TempDir())

	_, err := Load()
	assert.Error(t, err)
}

func TestResolveEditor(t *testing.T) {
	t.Setenv("EDITOR", "")

	cfg := &Config{Editor: "hx"}
	assert.Equal(t, "hx", cfg.ResolveEditor())

	cfg = &Config{}
	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", cfg.ResolveEditor())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "zed", cfg.ResolveEditor())
}

func TestDefaultKeyBindings(t *testing.T) {
	kb := DefaultKeyBindings()

	assert.Equal(t, "q", kb.Quit)
	assert.Equal(t, "enter", kb.Enter)
	assert.Equal(t, "h", kb.Parent)
	assert.Equal(t, "k", kb.Up)
	assert.Equal(t, ".", kb.ToggleHidden)
}
