package cinema

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cinema-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

var noopLogger = NoopLogger()

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(title string, replaced bool) {
	l.Debug("add completed",
		"title", title,
		"replaced", replaced,
	)
}

// LogRemove logs a remove operation. A missing title is logged at warn level.
func (l *Logger) LogRemove(title string, err error) {
	if err != nil {
		l.Log(context.Background(), failureLevel(err), "remove failed",
			"title", title,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"title", title,
		)
	}
}

// LogDetails logs a details lookup.
func (l *Logger) LogDetails(title string, err error) {
	if err != nil {
		l.Log(context.Background(), failureLevel(err), "details failed",
			"title", title,
			"error", err,
		)
	}
}

// LogFilter logs a filter operation.
func (l *Logger) LogFilter(filters, matched int, err error) {
	if err != nil {
		l.Error("filter failed",
			"filters", filters,
			"error", err,
		)
	} else {
		l.Debug("filter completed",
			"filters", filters,
			"matched", matched,
		)
	}
}

func failureLevel(err error) slog.Level {
	if errors.Is(err, ErrNotFound) {
		return slog.LevelWarn
	}
	return slog.LevelError
}
