package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uliboooo/easy-storage/pkg/storage"
	"github.com/Uliboooo/easy-storage/pkg/storage/snapshot"
)

// TestFileStoreLayout verifies the name.sequence.format file naming.
func TestFileStoreLayout(t *testing.T) {
	dir := t.TempDir()
	store, err := snapshot.NewFileStore(dir)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("settings", storage.FormatJSON, []byte("{}")))
	require.NoError(t, store.Save("settings", storage.FormatTOML, []byte(`key = "v"`)))

	assert.FileExists(t, filepath.Join(dir, "settings.1.json"))
	assert.FileExists(t, filepath.Join(dir, "settings.2.toml"))

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// TestFileStoreInteropWithStorage verifies snapshot files load directly
// through the storage package, since the format rides in the extension.
func TestFileStoreInteropWithStorage(t *testing.T) {
	type user struct {
		Name  string `json:"name" toml:"name"`
		Email string `json:"email" toml:"email"`
	}
	alice := user{Name: "Alice", Email: "alice@alice.com"}

	dir := t.TempDir()
	store, err := snapshot.NewFileStore(dir)
	require.NoError(t, err)
	defer store.Close()

	encoded, err := storage.Marshal(alice, storage.FormatTOML)
	require.NoError(t, err)
	require.NoError(t, store.Save("user", storage.FormatTOML, encoded))

	loaded, err := storage.LoadByExtension[user](filepath.Join(dir, "user.1.toml"))
	require.NoError(t, err)
	assert.Equal(t, alice, loaded)
}

// TestFileStorePersistsAcrossReopen verifies a new store over the same
// directory sees the existing history.
func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := snapshot.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("settings", storage.FormatJSON, []byte("first")))
	require.NoError(t, store.Close())

	reopened, err := snapshot.NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.Save("settings", storage.FormatJSON, []byte("second")))

	snap, err := reopened.Latest("settings")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Sequence)
	assert.Equal(t, []byte("second"), snap.Data)
}

// TestFileStoreIgnoresForeignFiles verifies stray files in the directory
// don't confuse listing.
func TestFileStoreIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.abc.json"), []byte("{}"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.1.json"), 0o755))

	store, err := snapshot.NewFileStore(dir)
	require.NoError(t, err)
	defer store.Close()

	infos, err := store.List("settings")
	require.NoError(t, err)
	assert.Empty(t, infos)
}
