package snapshot_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uliboooo/easy-storage/pkg/storage"
	"github.com/Uliboooo/easy-storage/pkg/storage/snapshot"
)

// TestInstrumentedPassesThrough verifies the decorator changes no behavior.
func TestInstrumentedPassesThrough(t *testing.T) {
	store := snapshot.NewInstrumented(snapshot.NewMemoryStore(), nil, nil)
	defer store.Close()

	require.NoError(t, store.Save("settings", storage.FormatJSON, []byte("{}")))

	snap, err := store.Latest("settings")
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), snap.Data)

	infos, err := store.List("settings")
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	require.NoError(t, store.DeleteAll("settings"))
	_, err = store.Latest("settings")
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

// TestInstrumentedContract verifies the decorator still satisfies the store
// contract end to end.
func TestInstrumentedContract(t *testing.T) {
	storeContractTest(t, "Instrumented", func(t *testing.T) snapshot.Store {
		return snapshot.NewInstrumented(snapshot.NewMemoryStore(), nil, nil)
	})
}

// TestInstrumentedLogs verifies operations and failures reach the logger.
func TestInstrumentedLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := snapshot.NewInstrumented(snapshot.NewMemoryStore(), logger, nil)
	defer store.Close()

	require.NoError(t, store.Save("settings", storage.FormatJSON, []byte("{}")))
	assert.Contains(t, buf.String(), "snapshot saved")
	assert.Contains(t, buf.String(), "name=settings")

	buf.Reset()
	_, err := store.Latest("missing")
	require.ErrorIs(t, err, snapshot.ErrNotFound)
	assert.Contains(t, buf.String(), "snapshot load failed")
}
