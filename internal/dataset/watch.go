package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watch reloads the dataset file at filePath whenever it changes and passes
// each successfully decoded dataset to onChange. A file that fails to decode
// is logged and skipped, so the last good dataset stays active.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, filePath string, logger *slog.Logger, onChange func(Dataset)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file instead of writing it
	target := filepath.Clean(filePath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	logger = logger.With("component", "dataset-watcher", "path", target)
	logger.Info("watching dataset for changes")

	r := &reloader{path: target, logger: logger, onChange: onChange}
	reload := func() { r.reload(ctx) }

	var (
		mu       sync.Mutex
		debounce *time.Timer
	)

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			mu.Unlock()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, reload)
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("dataset watcher error", "error", err)
		}
	}
}

// reloader runs one reload at a time, so a slow read of an older file never
// hands its dataset to onChange after a newer one.
type reloader struct {
	mu       sync.Mutex
	path     string
	logger   *slog.Logger
	onChange func(Dataset)
}

func (r *reloader) reload(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	ds, err := LoadFile(r.path)
	if err != nil {
		r.logger.Error("failed to reload dataset", "error", err)
		return
	}
	r.logger.Info("dataset reloaded", "places", len(ds.Places))
	r.onChange(ds)
}
