package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 150 * time.Millisecond

// StartWatcher calls reload whenever path is written, created or renamed.
// Bursts of events within debounce collapse into one reload. The parent
// directory is watched so editors that replace the file are still seen. It
// returns once the watch is established and stops when ctx is cancelled.
func StartWatcher(ctx context.Context, path string, debounce time.Duration, reload func(), logger *slog.Logger) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer func() { _ = w.Close() }()

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				logger.Debug("samples changed", "path", path)
				reload()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "path", path, "error", err)
			}
		}
	}()
	return nil
}
