package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-merge/internal/logger"
)

// settleDelay gives the writer time to finish before the batch re-runs.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	dirs    []string
	handler TriggerHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
}

// Start blocks, re-running the handler whenever a new subtitle file lands in
// one of the watched directories. Returns when ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", strings.Join(w.dirs, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isSubtitleFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-subtitle file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New subtitle detected: %s", event.Name)
			time.Sleep(settleDelay)
			w.drainCreates(ctx)

			if err := w.handler(ctx); err != nil {
				w.logger.Error(ctx, "Batch failed: %v", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// drainCreates absorbs events that piled up during the settle delay so a
// burst of dropped files triggers one batch, not one per file.
func (w *implWatcher) drainCreates(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debug(ctx, "Coalescing event: %s", event.Name)
		default:
			return
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isSubtitleFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".srt"
}
