package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the easy-storage tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("easystorage")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSaveSpan starts a span covering one save operation.
	// Returns the context with span and the span itself.
	StartSaveSpan(ctx context.Context, path, format string) (context.Context, trace.Span)

	// StartLoadSpan starts a span covering one load operation.
	StartLoadSpan(ctx context.Context, path, format string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartSaveSpan starts a span covering one save operation.
func (m *otelSpanManager) StartSaveSpan(ctx context.Context, path, format string) (context.Context, trace.Span) {
	return StartSaveSpan(ctx, path, format)
}

// StartLoadSpan starts a span covering one load operation.
func (m *otelSpanManager) StartLoadSpan(ctx context.Context, path, format string) (context.Context, trace.Span) {
	return StartLoadSpan(ctx, path, format)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartSaveSpan starts a span covering one save operation.
// Uses the global OTel tracer.
func StartSaveSpan(ctx context.Context, path, format string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "easystorage.save",
		trace.WithAttributes(
			attribute.String("file.path", path),
			attribute.String("file.format", format),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartLoadSpan starts a span covering one load operation.
// Uses the global OTel tracer.
func StartLoadSpan(ctx context.Context, path, format string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "easystorage.load",
		trace.WithAttributes(
			attribute.String("file.path", path),
			attribute.String("file.format", format),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
