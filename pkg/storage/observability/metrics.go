package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records easy-storage metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSave records a save operation with its duration, payload size,
	// and error status.
	RecordSave(ctx context.Context, format string, duration time.Duration, sizeBytes int64, err error)

	// RecordLoad records a load operation with its duration and error status.
	RecordLoad(ctx context.Context, format string, duration time.Duration, err error)

	// RecordSnapshot records a snapshot store save.
	RecordSnapshot(ctx context.Context, name string, sizeBytes int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	saves        metric.Int64Counter
	saveLatency  metric.Float64Histogram
	saveErrors   metric.Int64Counter
	loads        metric.Int64Counter
	loadLatency  metric.Float64Histogram
	loadErrors   metric.Int64Counter
	snapshotSize metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("easystorage")

	saves, err := meter.Int64Counter("easystorage.saves",
		metric.WithDescription("Number of save operations"),
	)
	if err != nil {
		return nil, err
	}

	saveLatency, err := meter.Float64Histogram("easystorage.save.latency_ms",
		metric.WithDescription("Save latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	saveErrors, err := meter.Int64Counter("easystorage.save.errors",
		metric.WithDescription("Number of failed save operations"),
	)
	if err != nil {
		return nil, err
	}

	loads, err := meter.Int64Counter("easystorage.loads",
		metric.WithDescription("Number of load operations"),
	)
	if err != nil {
		return nil, err
	}

	loadLatency, err := meter.Float64Histogram("easystorage.load.latency_ms",
		metric.WithDescription("Load latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	loadErrors, err := meter.Int64Counter("easystorage.load.errors",
		metric.WithDescription("Number of failed load operations"),
	)
	if err != nil {
		return nil, err
	}

	snapshotSize, err := meter.Int64Histogram("easystorage.snapshot.size_bytes",
		metric.WithDescription("Snapshot size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		saves:        saves,
		saveLatency:  saveLatency,
		saveErrors:   saveErrors,
		loads:        loads,
		loadLatency:  loadLatency,
		loadErrors:   loadErrors,
		snapshotSize: snapshotSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		return NoopMetrics{}
	}
	return m
}

// RecordSave implements MetricsRecorder.
func (m *otelMetrics) RecordSave(ctx context.Context, format string, duration time.Duration, sizeBytes int64, err error) {
	attrs := metric.WithAttributes(attribute.String("format", format))
	m.saves.Add(ctx, 1, attrs)
	m.saveLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		m.saveErrors.Add(ctx, 1, attrs)
		return
	}
	m.snapshotSize.Record(ctx, sizeBytes, attrs)
}

// RecordLoad implements MetricsRecorder.
func (m *otelMetrics) RecordLoad(ctx context.Context, format string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("format", format))
	m.loads.Add(ctx, 1, attrs)
	m.loadLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		m.loadErrors.Add(ctx, 1, attrs)
	}
}

// RecordSnapshot implements MetricsRecorder.
func (m *otelMetrics) RecordSnapshot(ctx context.Context, name string, sizeBytes int64) {
	m.snapshotSize.Record(ctx, sizeBytes,
		metric.WithAttributes(attribute.String("name", name)))
}
