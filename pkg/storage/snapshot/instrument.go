package snapshot

import (
	"context"
	"log/slog"

	"github.com/Uliboooo/easy-storage/pkg/storage"
	"github.com/Uliboooo/easy-storage/pkg/storage/observability"
)

// Instrumented wraps a Store with structured logging and metrics.
// Pass a nil logger or a NoopMetrics recorder to disable either side.
type Instrumented struct {
	store   Store
	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// Compile-time interface check.
var _ Store = (*Instrumented)(nil)

// NewInstrumented wraps store so every operation is logged and counted.
func NewInstrumented(store Store, logger *slog.Logger, metrics observability.MetricsRecorder) *Instrumented {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &Instrumented{store: store, logger: logger, metrics: metrics}
}

// Save implements Store.
func (i *Instrumented) Save(name string, format storage.Format, data []byte) error {
	err := i.store.Save(name, format, data)
	if err != nil {
		observability.LogSnapshotError(i.logger, "save", name, err)
		return err
	}
	observability.LogSnapshot(i.logger, "saved", name, len(data))
	i.metrics.RecordSnapshot(context.Background(), name, int64(len(data)))
	return nil
}

// Latest implements Store.
func (i *Instrumented) Latest(name string) (*Snapshot, error) {
	snap, err := i.store.Latest(name)
	if err != nil {
		observability.LogSnapshotError(i.logger, "load", name, err)
		return nil, err
	}
	observability.LogSnapshot(i.logger, "loaded", name, len(snap.Data))
	return snap, nil
}

// Version implements Store.
func (i *Instrumented) Version(name string, sequence int) (*Snapshot, error) {
	snap, err := i.store.Version(name, sequence)
	if err != nil {
		observability.LogSnapshotError(i.logger, "load", name, err)
		return nil, err
	}
	observability.LogSnapshot(i.logger, "loaded", name, len(snap.Data))
	return snap, nil
}

// List implements Store.
func (i *Instrumented) List(name string) ([]Info, error) {
	return i.store.List(name)
}

// Delete implements Store.
func (i *Instrumented) Delete(name string, sequence int) error {
	err := i.store.Delete(name, sequence)
	if err != nil {
		observability.LogSnapshotError(i.logger, "delete", name, err)
		return err
	}
	observability.LogSnapshot(i.logger, "deleted", name, 0)
	return nil
}

// DeleteAll implements Store.
func (i *Instrumented) DeleteAll(name string) error {
	err := i.store.DeleteAll(name)
	if err != nil {
		observability.LogSnapshotError(i.logger, "delete", name, err)
		return err
	}
	observability.LogSnapshot(i.logger, "deleted", name, 0)
	return nil
}

// Close implements Store.
func (i *Instrumented) Close() error {
	return i.store.Close()
}
