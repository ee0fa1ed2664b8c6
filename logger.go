package vecbench

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vecbench-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRunID adds the run identifier to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithSuite adds a suite name field to the logger.
func (l *Logger) WithSuite(suite string) *Logger {
	return &Logger{
		Logger: l.Logger.With("suite", suite),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogGenerate logs dataset materialization.
func (l *Logger) LogGenerate(ctx context.Context, count, dim int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generation failed",
			"count", count,
			"dimension", dim,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dataset materialized",
			"count", count,
			"dimension", dim,
		)
	}
}

// LogArm logs one timed architecture arm.
func (l *Logger) LogArm(ctx context.Context, arch string, total time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "arm failed",
			"arch", arch,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "arm completed",
			"arch", arch,
			"total", total,
		)
	}
}

// LogCheck logs one compliance check outcome.
func (l *Logger) LogCheck(ctx context.Context, name string, passed bool, detail string) {
	if passed {
		l.DebugContext(ctx, "check passed",
			"check", name,
		)
	} else {
		l.InfoContext(ctx, "check rejected input",
			"check", name,
			"detail", detail,
		)
	}
}
