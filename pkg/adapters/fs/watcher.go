package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before a change is reported.
const DefaultDebounce = 50 * time.Millisecond

// ChangeFunc is called once per settled change of the watched file.
type ChangeFunc func(ctx context.Context) error

// WatcherConfig holds the settings of a Watcher.
type WatcherConfig struct {
	Logger   *slog.Logger
	Debounce time.Duration
	// ErrorHandler receives errors from the change callback and from fsnotify.
	// Errors are logged when it is nil.
	ErrorHandler func(error)
}

// Watcher reports changes to a single file. It watches the parent directory
// so editors that save by rename are still seen.
type Watcher struct {
	path     string
	onChange ChangeFunc
	config   WatcherConfig

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for path. Nothing is watched until Run or Start.
func NewWatcher(path string, onChange ChangeFunc, config WatcherConfig) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	return &Watcher{path: abs, onChange: onChange, config: config}, nil
}

// Start runs the watcher in the background until ctx is done.
func (w *Watcher) Start(ctx context.Context) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		return w.Run(ctx)
	}, lifecycle.WithErrorHandler(func(err error) {
		w.handleError(fmt.Errorf("watcher stopped: %w", err))
	}))
}

// Running reports whether the event loop is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Run blocks, watching the file until ctx is done.
func (w *Watcher) Run(ctx context.Context) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running for %s", w.path)
	}
	w.running = true
	w.mu.Unlock()
	defer w.setRunning(false)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.config.Logger != nil && w.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()

	return w.loop(ctx, watcher)
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) error {
	timer := time.NewTimer(w.config.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			if w.config.Logger != nil {
				w.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			}
			timer.Reset(w.config.Debounce)

		case <-timer.C:
			if err := w.onChange(ctx); err != nil {
				w.handleError(err)
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleError(wErr)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) handleError(err error) {
	if w.config.ErrorHandler != nil {
		w.config.ErrorHandler(err)
		return
	}
	if w.config.Logger != nil {
		w.config.Logger.Error("watch error", "path", w.path, "error", err)
	}
}

func (w *Watcher) setRunning(running bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = running
}
