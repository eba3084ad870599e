package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-merge/internal/logger"
)

// New creates a Watcher over the spoken and descriptive track directories.
func New(dirs []string, handler TriggerHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("add watch path %s: %w", dir, err)
		}
	}

	return &implWatcher{
		dirs:    dirs,
		handler: handler,
		logger:  log,
		watcher: fsw,
	}, nil
}
