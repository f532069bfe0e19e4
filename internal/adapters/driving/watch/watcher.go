// Package watch re-runs a callback when a watched file changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sagar50802/law-network-client-sub002/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last event
// before invoking the callback.
const DefaultDebounce = 200 * time.Millisecond

// Callback is invoked with the watched path after a change settles.
type Callback func(ctx context.Context, path string) error

// Watcher watches a single file for writes and re-creations.
type Watcher struct {
	path     string
	debounce time.Duration
	callback Callback
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher for path.
func New(path string, callback Callback, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		callback: callback,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. The parent directory is watched
// rather than the file so editors that save by rename keep triggering.
// Callbacks run one at a time on a single worker; changes made while one
// runs are coalesced into one more call. Run returns only after the
// running callback, if any, has finished. Callback errors are logged and
// do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	if w.callback == nil {
		return errors.New("watch: nil callback")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", w.path, err)
	}
	logger.Debug("watching %s (debounce %s)", w.path, w.debounce)

	trigger := make(chan struct{}, 1)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.work(ctx, trigger, stop)
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	notify := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.handleEvent(event) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, notify)
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// work runs the callback once per trigger until stop is closed.
func (w *Watcher) work(ctx context.Context, trigger <-chan struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-trigger:
			if ctx.Err() != nil {
				return
			}
			if err := w.callback(ctx, w.path); err != nil {
				logger.Warn("watch callback for %s: %v", w.path, err)
			}
		}
	}
}

// handleEvent reports whether event should trigger the callback.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
