package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/caption-merge/internal/combiner"
	"github.com/nguyentantai21042004/caption-merge/internal/config"
	"github.com/nguyentantai21042004/caption-merge/internal/logger"
	"github.com/nguyentantai21042004/caption-merge/internal/processor"
	"github.com/nguyentantai21042004/caption-merge/internal/summarizer"
	"github.com/nguyentantai21042004/caption-merge/internal/watcher"
)

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Descriptive Transcript Combiner")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Identifier prefix: %s", cfg.Combine.IDPrefix)
	log.Info(ctx, "Spoken tracks: %s", cfg.Paths.Spoken)
	log.Info(ctx, "Descriptive tracks: %s", cfg.Paths.Descriptive)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	comb := combiner.New(cfg.Combine.IDPrefix, log)
	summ := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if summ != nil {
		log.Info(ctx, "Gemini summaries enabled (%s)", cfg.Gemini.Model)
	}
	proc := processor.New(cfg, comb, summ, log)

	// Always run one batch over whatever is already in the track dirs.
	if err := proc.Process(ctx); err != nil {
		log.Error(ctx, "Batch failed: %v", err)
		os.Exit(1)
	}

	if !cfg.Combine.Watch {
		return
	}

	w, err := watcher.New(
		[]string{cfg.Paths.Spoken, cfg.Paths.Descriptive},
		proc.Process,
		log,
	)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching for new subtitle files. Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Spoken,
		cfg.Paths.Descriptive,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
