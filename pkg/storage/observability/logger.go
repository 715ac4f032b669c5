// Package observability provides opt-in observability features for
// easy-storage: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// The core save/load operations stay uninstrumented; these helpers are for
// the snapshot stores and for callers wrapping their own persistence flows.
// All features have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds persistence context to a logger.
// Returns a new logger with path and format fields.
func EnrichLogger(logger *slog.Logger, path, format string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("path", path),
		slog.String("format", format),
	)
}

// LogSave logs a completed save.
func LogSave(logger *slog.Logger, path, format string, sizeBytes int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("record saved",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("size_bytes", sizeBytes),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSaveError logs a save failure.
func LogSaveError(logger *slog.Logger, path string, err error) {
	if logger == nil {
		return
	}
	logger.Error("save failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// LogLoad logs a completed load.
func LogLoad(logger *slog.Logger, path, format string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("record loaded",
		slog.String("path", path),
		slog.String("format", format),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogLoadError logs a load failure.
func LogLoadError(logger *slog.Logger, path string, err error) {
	if logger == nil {
		return
	}
	logger.Error("load failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// LogSnapshot logs a snapshot store operation.
func LogSnapshot(logger *slog.Logger, op, name string, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("snapshot "+op,
		slog.String("name", name),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogSnapshotError logs a snapshot store failure (non-fatal).
func LogSnapshotError(logger *slog.Logger, op, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("snapshot "+op+" failed",
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
