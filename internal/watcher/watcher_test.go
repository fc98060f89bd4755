package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherDeliversDebouncedEvent(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// A burst of writes coalesces into one notification.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte{byte(i)}, 0o644))
	}

	select {
	case _, ok := <-w.Events():
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("no event after change burst")
	}
}

func TestWatcherRetarget(t *testing.T) {
	old := t.TempDir()
	next := t.TempDir()

	w, err := New(old, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Retarget(next))
	require.NoError(t, w.Retarget(next), "retarget to the current directory is a no-op")

	require.NoError(t, os.WriteFile(filepath.Join(next, "b.txt"), []byte("x"), 0o644))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event from retargeted directory")
	}
}

func TestWatcherNewFailsOnMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), time.Millisecond)
	assert.Error(t, err)
}

func TestWatcherCloseClosesEvents(t *testing.T) {
	w, err := New(t.TempDir(), time.Millisecond)
	require.NoError(t, err)

	w.Close()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed")
	}
}
