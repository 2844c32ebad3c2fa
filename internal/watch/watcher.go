// Package watch triggers index rebuilds when the sidebar manifest changes
// on disk. Events are debounced so editor save storms and atomic
// write-rename sequences produce a single rebuild.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher watches a single manifest file and emits one event per settled
// change. Editors typically replace files by rename, so the containing
// directory is watched and events are filtered to the target name.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   bool

	events chan struct{}
}

// New creates a watcher for the manifest at path.
func New(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
		events:   make(chan struct{}, 1),
	}, nil
}

// Events returns the channel of settled-change notifications.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Start begins watching. It returns immediately; event processing runs
// until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("manifest watcher started",
		"path", w.path,
		"debounce", w.debounce)
	return nil
}

// Stop stops the watcher. The events channel is closed by the processing
// goroutine when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents folds raw fsnotify events into debounced notifications.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent marks a pending change when the manifest itself moved.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()

	w.logger.Debug("manifest change detected", "op", event.Op.String())
}

// flushPending emits a single event for any accumulated changes.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if !pending {
		return
	}

	select {
	case w.events <- struct{}{}:
	default:
		// A notification is already queued; the consumer rebuilds from the
		// latest manifest anyway.
	}
}
