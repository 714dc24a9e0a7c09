package vecgeom

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecgeom-specific context.
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
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an operation name field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogOperation logs a completed batch operation.
func (l *Logger) LogOperation(op string, vectors, dimension int, err error) {
	if err != nil {
		l.Error("operation failed",
			"op", op,
			"vectors", vectors,
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.Debug("operation completed",
			"op", op,
			"vectors", vectors,
			"dimension", dimension,
		)
	}
}

// LogRandomDraw logs how a Monte Carlo call sourced its randomness.
func (l *Logger) LogRandomDraw(op string, seed *uint64) {
	if seed != nil {
		l.Debug("seeded random scope", "op", op, "seed", *seed)
	} else {
		l.Debug("shared random source", "op", op)
	}
}

// LogCodec logs an encode or decode.
func (l *Logger) LogCodec(op, codec string, bytes int, err error) {
	if err != nil {
		l.Error("codec failed",
			"op", op,
			"codec", codec,
			"error", err,
		)
	} else {
		l.Debug("codec completed",
			"op", op,
			"codec", codec,
			"bytes", bytes,
		)
	}
}
