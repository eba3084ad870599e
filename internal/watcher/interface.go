package watcher

import "context"

// Watcher monitors the track directories and re-triggers combination when
// new subtitle files arrive.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// TriggerHandler runs one combination batch. Invoked after new .srt files
// settle in either watched directory.
type TriggerHandler func(ctx context.Context) error
