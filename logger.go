package fixedbitmaps

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with bitmap-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NoopLogger())
}

// SetLogger replaces the process-wide logger used by the bitmap packages.
// Passing nil restores the discarding default.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	defaultLogger.Store(l)
}

// DefaultLogger returns the process-wide logger.
func DefaultLogger() *Logger {
	return defaultLogger.Load()
}

// WithWidth adds a width field to the logger.
func (l *Logger) WithWidth(width uint) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// LogOverflow logs an arithmetic operation whose carry fell off the top word.
func (l *Logger) LogOverflow(ctx context.Context, op string, width uint, operand uint64) {
	l.WarnContext(ctx, "bitmap arithmetic overflowed",
		"op", op,
		"width", width,
		"operand", operand,
	)
}
