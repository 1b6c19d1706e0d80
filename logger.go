package fsresult

import (
	"context"
	"log/slog"
	"os"

	"github.com/jvens/fsresult/fserr"
)

// Logger wraps slog.Logger with filesystem-specific context.
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
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogFailure logs a classified failure of op.
func (l *Logger) LogFailure(ctx context.Context, op string, err *fserr.Error) {
	if err == nil {
		return
	}
	attrs := []any{
		"op", op,
		"kind", err.Kind.String(),
		"error", err.Message,
	}
	if err.Path != "" {
		attrs = append(attrs, "path", err.Path)
	}
	if err.Code != "" {
		attrs = append(attrs, "code", err.Code)
	}
	if err.Syscall != "" {
		attrs = append(attrs, "syscall", err.Syscall)
	}
	l.DebugContext(ctx, "operation failed", attrs...)
}
