// Package watch provides debounced file monitoring for follow mode. It
// watches the track file and the edit log and fires a callback when either
// changes, coalescing editor write bursts into a single notification.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wav-labs/grainview/pkg/log"
)

// Watcher monitors a set of files for changes.
type Watcher struct {
	logger        log.Logger
	debounceDelay time.Duration
	paths         map[string]bool
	onChange      func()

	mu       sync.Mutex
	debounce *time.Timer
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// New creates a watcher over the given files. onChange runs on the watch
// goroutine after changes settle for debounceDelay.
func New(paths []string, debounceDelay time.Duration, logger log.Logger, onChange func()) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if debounceDelay <= 0 {
		debounceDelay = 100 * time.Millisecond
	}

	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = true
	}
	return &Watcher{
		logger:        logger,
		debounceDelay: debounceDelay,
		paths:         set,
		onChange:      onChange,
	}
}

// Start begins watching. It returns once the underlying watcher is
// registered; events are handled on a background goroutine until the
// context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch parent directories: editors typically replace files via
	// rename, which drops watches registered on the file itself.
	dirs := make(map[string]bool)
	for p := range w.paths {
		dirs[filepath.Dir(p)] = true
	}
	for d := range dirs {
		if err := fsw.Add(d); err != nil {
			fsw.Close()
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.loop(watchCtx, fsw)

	w.logger.Debug("watcher started", log.Int("files", len(w.paths)))
	return nil
}

// Stop cancels the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.paths[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("file changed", log.String("path", event.Name))
			w.scheduleChange()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", log.Err(err))
		}
	}
}

// scheduleChange (re)arms the debounce timer.
func (w *Watcher) scheduleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, w.onChange)
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
}
