package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var _ MetricsRecorder = NoopMetrics{}
}

func TestNoopMetrics_RecordSave(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordSave(context.Background(), "json", 100*time.Millisecond, 1024, nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordSave(context.Background(), "toml", 100*time.Millisecond, 0, errors.New("test"))
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordSave(nil, "json", 0, 0, nil)
		})
	})
}

func TestNoopMetrics_RecordLoad(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordLoad(context.Background(), "json", 50*time.Millisecond, nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordLoad(context.Background(), "toml", 0, errors.New("test"))
		})
	})
}

func TestNoopMetrics_RecordSnapshot(t *testing.T) {
	m := NoopMetrics{}

	assert.NotPanics(t, func() {
		m.RecordSnapshot(context.Background(), "settings", 1024)
	})
	assert.NotPanics(t, func() {
		m.RecordSnapshot(context.Background(), "", 0)
	})
}

func TestNoopSpanManager_ImplementsInterface(t *testing.T) {
	var _ SpanManager = NoopSpanManager{}
}

func TestNoopSpanManager(t *testing.T) {
	m := NoopSpanManager{}

	t.Run("StartSaveSpan returns context unchanged", func(t *testing.T) {
		ctx := context.Background()
		gotCtx, span := m.StartSaveSpan(ctx, "user.json", "json")
		assert.Equal(t, ctx, gotCtx)
		assert.NotNil(t, span)
	})

	t.Run("StartLoadSpan returns context unchanged", func(t *testing.T) {
		ctx := context.Background()
		gotCtx, span := m.StartLoadSpan(ctx, "user.toml", "toml")
		assert.Equal(t, ctx, gotCtx)
		assert.NotNil(t, span)
	})

	t.Run("EndSpanWithError does not panic", func(t *testing.T) {
		_, span := m.StartSaveSpan(context.Background(), "user.json", "json")
		assert.NotPanics(t, func() {
			m.EndSpanWithError(span, errors.New("test"))
		})
		assert.NotPanics(t, func() {
			m.EndSpanWithError(nil, nil)
		})
	})

	t.Run("AddSpanEvent does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.AddSpanEvent(context.Background(), "event", attribute.String("k", "v"))
		})
	})
}
