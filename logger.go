package segbits

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with segbits-specific context.
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

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithFieldWidth adds a field width to the logger.
func (l *Logger) WithFieldWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("field_width", width),
	}
}

// WithCount adds a field count to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("field_count", count),
	}
}

// LogInit logs an Init call.
func (l *Logger) LogInit(ctx context.Context, bytes, segments int, err error) {
	if err != nil {
		l.WarnContext(ctx, "init failed",
			"bytes", bytes,
			"segments", segments,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "init completed",
			"bytes", bytes,
			"segments", segments,
		)
	}
}

// LogRelease logs the release of segment storage.
func (l *Logger) LogRelease(ctx context.Context, segments, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "release failed",
			"segments", segments,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "segments released",
			"segments", segments,
			"bytes", bytes,
		)
	}
}
