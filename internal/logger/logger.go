package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type implLogger struct {
	logger *log.Logger
	level  Level
}

// New creates a Logger writing to stdout at the given level.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, ParseLevel(level))
}

// NewWithWriter creates a Logger with an explicit sink, used by tests.
func NewWithWriter(w io.Writer, level Level) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

func (l *implLogger) log(level Level, tag, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log(LevelDebug, "[DEBUG]", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log(LevelInfo, "[INFO]", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log(LevelWarn, "[WARN]", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log(LevelError, "[ERROR]", msg, args...)
}

// FormatError renders an error for status strings; nil becomes empty.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
