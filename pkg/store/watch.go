package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrWatchUnsupported is returned by Watch for slots with no backing file.
var ErrWatchUnsupported = errors.New("store: slot cannot be watched")

// Event is emitted by Watch when the slot payload may have changed.
type Event struct {
	Slot string
	// Err is set when the watcher itself reported a problem; callers
	// should reload anyway.
	Err error
}

// WatchOption configures Watch.
type WatchOption func(*watchOptions)

type watchOptions struct {
	log *zap.Logger
}

// WithWatchLogger sets where watcher housekeeping problems are logged.
func WithWatchLogger(l *zap.Logger) WatchOption {
	return func(o *watchOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// Watch streams change events for slot until ctx is cancelled. Callers
// should drain the returned channel to avoid missing events. The channel
// is closed once ctx is done or the watcher fails.
func Watch(ctx context.Context, slot Slot, opts ...WatchOption) (<-chan Event, error) {
	o := watchOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	path := PathOf(slot)
	if path == "" {
		return nil, ErrWatchUnsupported
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				o.log.Warn("closing slot watcher", zap.String("slot", slot.Name()), zap.Error(err))
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)
	name := slot.Name()
	target := filepath.Base(path)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// A pending event already tells the consumer to reload.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Slot: name, Err: err}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !touches(evt, target) {
					continue
				}
				throttle.Enqueue(Event{Slot: name}, send)
			}
		}
	}()

	return events, nil
}

// touches reports whether evt concerns the payload file. SQLite writes
// land in the -wal sidecar before checkpointing.
func touches(evt fsnotify.Event, target string) bool {
	if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	base := filepath.Base(evt.Name)
	return base == target || strings.HasPrefix(base, target+"-")
}

// eventThrottle coalesces a burst of filesystem activity into one event.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	// Keep the first error seen in the burst.
	if t.pending == nil || (t.pending.Err == nil && ev.Err != nil) {
		t.pending = &ev
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = nil
	if t.stopped || t.pending == nil {
		return
	}
	ev := *t.pending
	t.pending = nil
	// send never blocks, and holding the lock keeps it ordered before Stop.
	send(ev)
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
