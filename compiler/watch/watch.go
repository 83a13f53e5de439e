// Package watch reruns a function whenever catalogs in a directory change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for further events before
// running the callback. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches one directory for changes to files with a given extension.
type Watcher struct {
	Dir       string
	Extension string
	Debounce  time.Duration
	Logger    *slog.Logger
}

// Watch is a shorthand for a Watcher with the default logger.
func Watch(ctx context.Context, dir, ext string, debounce time.Duration, fn func(context.Context) error) error {
	w := &Watcher{Dir: dir, Extension: ext, Debounce: debounce}
	return w.Run(ctx, fn)
}

// Run calls fn after every burst of create, write, remove or rename events
// on matching files. Errors returned by fn are logged and watching goes on.
// Run returns when ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.Dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", w.Dir, err)
	}

	// pending is nil while no change is waiting to be handled.
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logger.Debug("catalog changed", "path", ev.Name, "op", ev.Op.String())
			pending = time.After(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		case <-pending:
			pending = nil
			if err := fn(ctx); err != nil {
				logger.Error("regeneration failed", "error", err)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Ext(ev.Name) != w.Extension {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
