package bitseq

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitseq-specific helpers.
// It provides structured logging with consistent field names.
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
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
// It is the default for Dynamic sequences.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogRealloc logs a storage reallocation of the growable variant.
func (l *Logger) LogRealloc(op string, oldCap, newCap, bits uint64) {
	l.Debug("storage reallocated",
		"op", op,
		"old_capacity_bits", oldCap,
		"new_capacity_bits", newCap,
		"bits", bits,
	)
}
