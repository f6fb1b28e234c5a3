package dakoda

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with corpus-specific context. This provides
// structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithCorpus adds a corpus field to the logger.
func (l *Logger) WithCorpus(name string) *Logger {
	return &Logger{Logger: l.Logger.With("corpus", name)}
}

// WithSubset adds an index subset field to the logger.
func (l *Logger) WithSubset(subset Subset) *Logger {
	return &Logger{Logger: l.Logger.With("subset", string(subset))}
}

// LogIndexBuild logs the outcome of building an index subset.
func (l *Logger) LogIndexBuild(ctx context.Context, subset Subset, rows int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"subset", string(subset),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index built",
			"subset", string(subset),
			"rows", rows,
			"took", took,
		)
	}
}

// LogCacheHit logs an index load from cache.
func (l *Logger) LogCacheHit(ctx context.Context, subset Subset, rows int) {
	l.DebugContext(ctx, "index loaded from cache",
		"subset", string(subset),
		"rows", rows,
	)
}

// LogCacheMiss logs a failed cache read; the index is rebuilt afterwards.
func (l *Logger) LogCacheMiss(ctx context.Context, subset Subset, err error) {
	if err != nil {
		l.WarnContext(ctx, "cache read failed, rebuilding index",
			"subset", string(subset),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "cache empty, building index",
			"subset", string(subset),
		)
	}
}

// LogCacheWrite logs the outcome of persisting an index subset.
func (l *Logger) LogCacheWrite(ctx context.Context, subset Subset, err error) {
	if err != nil {
		l.WarnContext(ctx, "cache write failed",
			"subset", string(subset),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index cached",
			"subset", string(subset),
		)
	}
}
