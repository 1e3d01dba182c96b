package ledgerseek

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with ledgerseek-specific context.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeekID tags the logger with a per-search correlation id.
func (l *Logger) WithSeekID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("seek_id", id),
	}
}

// LogLookup logs a single provider call.
func (l *Logger) LogLookup(ctx context.Context, seq int64, closeTime int64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "lookup failed",
			"seq", seq,
			"duration", duration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "lookup completed",
			"seq", seq,
			"close_time", closeTime,
			"duration", duration,
		)
	}
}

// LogSeek logs the outcome of a whole search.
func (l *Logger) LogSeek(ctx context.Context, target int64, result Result, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "seek failed",
			"target", target,
			"duration", duration,
			"error", err,
		)
	} else if result.Exact {
		l.InfoContext(ctx, "seek completed",
			"target", target,
			"seq", result.Seq,
			"exact", true,
			"iterations", result.Iterations,
			"lookups", result.Lookups,
			"duration", duration,
		)
	} else {
		l.InfoContext(ctx, "seek completed",
			"target", target,
			"lower_seq", result.Lower.Seq,
			"upper_seq", result.Upper.Seq,
			"exact", false,
			"iterations", result.Iterations,
			"lookups", result.Lookups,
			"duration", duration,
		)
	}
}

// searchLogger adapts Logger to the search package's printf-style interface.
type searchLogger struct {
	l *Logger
}

func (sl searchLogger) Infof(format string, args ...interface{}) {
	sl.l.Debug(fmt.Sprintf(format, args...))
}

func (sl searchLogger) Errorf(format string, args ...interface{}) {
	sl.l.Error(fmt.Sprintf(format, args...))
}
