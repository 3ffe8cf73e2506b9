package conformance

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with harness-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger writing run results through h.
// A nil h reports failures only, as text on stderr.
func NewLogger(h slog.Handler) *Logger {
	if h == nil {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	}
	return &Logger{Logger: slog.New(h)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithWidth adds a width field to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogWidthPassed logs a width whose run matched the reference.
func (l *Logger) LogWidthPassed(ctx context.Context, width, steps int) {
	l.DebugContext(ctx, "width passed",
		"width", width,
		"steps", steps,
	)
}

// LogWidthFailed logs a width whose run diverged or was cancelled.
func (l *Logger) LogWidthFailed(ctx context.Context, width int, err error) {
	l.ErrorContext(ctx, "width failed",
		"width", width,
		"error", err,
	)
}

// LogRunCompleted logs the outcome of RunWidths.
func (l *Logger) LogRunCompleted(ctx context.Context, widths, passed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "conformance run failed",
			"widths", widths,
			"passed", passed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "conformance run completed",
			"widths", widths,
		)
	}
}
