package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uliboooo/easy-storage/pkg/storage"
	"github.com/Uliboooo/easy-storage/pkg/storage/snapshot"
)

// TestMemoryLen verifies the snapshot count across names.
func TestMemoryLen(t *testing.T) {
	store := snapshot.NewMemoryStore()
	defer store.Close()

	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.Save("alpha", storage.FormatJSON, []byte("a")))
	require.NoError(t, store.Save("alpha", storage.FormatJSON, []byte("aa")))
	require.NoError(t, store.Save("beta", storage.FormatTOML, []byte("b")))
	assert.Equal(t, 3, store.Len())

	require.NoError(t, store.DeleteAll("alpha"))
	assert.Equal(t, 1, store.Len())
}

// TestMemoryDataIsolation verifies the store neither retains the caller's
// slice nor hands out its internal one.
func TestMemoryDataIsolation(t *testing.T) {
	store := snapshot.NewMemoryStore()
	defer store.Close()

	data := []byte("original")
	require.NoError(t, store.Save("settings", storage.FormatJSON, data))

	// Mutating the saved slice must not affect the stored copy
	data[0] = 'X'

	snap, err := store.Latest("settings")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), snap.Data)

	// Mutating the loaded slice must not affect later loads
	snap.Data[0] = 'Y'
	again, err := store.Latest("settings")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again.Data)
}
