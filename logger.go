package foodidx

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with foodidx-specific context.
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

// WithSource adds a source field (file or blob name) to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogAdd logs a record being indexed.
func (l *Logger) LogAdd(id string, indexed int) {
	l.Debug("record added",
		"id", id,
		"indexed_attributes", indexed,
	)
}

// LogFilter logs a completed filter.
func (l *Logger) LogFilter(kind FilterKind, terms, results int) {
	l.Debug("filter completed",
		"kind", string(kind),
		"terms", terms,
		"results", results,
	)
}

// LogRuleSkipped logs a nutrient rule that was ignored.
func (l *Logger) LogRuleSkipped(rule string, reason error) {
	l.Debug("rule skipped",
		"rule", rule,
		"reason", reason,
	)
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, source string, records, skipped int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", source,
			"records", records,
			"error", err,
		)
		return
	}
	if skipped > 0 {
		l.WarnContext(ctx, "load completed with skipped lines",
			"source", source,
			"records", records,
			"skipped", skipped,
		)
		return
	}
	l.InfoContext(ctx, "load completed",
		"source", source,
		"records", records,
	)
}

// LogExport logs a dataset export.
func (l *Logger) LogExport(ctx context.Context, dest string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"dest", dest,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "export completed",
			"dest", dest,
			"records", records,
		)
	}
}
