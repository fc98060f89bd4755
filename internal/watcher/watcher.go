// Package watcher keeps the displayed listing fresh by watching the single
// directory the browser is currently showing. Watching one directory at a
// time (and re-pointing on navigation) means the inotify/kqueue footprint
// stays constant no matter how deep the user browses — there is never a
// recursive watch of the tree.
package watcher

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watched directory's contents changed.
type Event struct{}

// Watcher watches one directory at a time and coalesces bursts of
// filesystem events into a single Event per debounce window.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	events   chan Event
	done     chan struct{}

	mu      sync.Mutex
	current string
}

// New creates a watcher pointed at dir.
func New(dir string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.current = dir

	go w.loop()
	return w, nil
}

// Events returns the channel notified after each debounced change burst.
func (w *Watcher) Events() <-chan Event { return w.events }

// Retarget swaps the watched directory. The old watch is removed first so
// events from a directory the user already left never trigger a relist.
func (w *Watcher) Retarget(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir == w.current {
		return nil
	}
	if w.current != "" {
		// Remove can fail if the directory was deleted out from under us;
		// the new Add is what matters.
		_ = w.fsw.Remove(w.current)
		w.current = ""
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.current = dir
	return nil
}

// Close tears down the watcher and closes the event channel.
func (w *Watcher) Close() {
	close(w.done)
	_ = w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	var timer *time.Timer

	for {
		select {
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerChan(timer):
			timer = nil
			select {
			case w.events <- Event{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}
