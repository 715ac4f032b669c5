package snapshot

import (
	"time"

	"github.com/Uliboooo/easy-storage/pkg/storage"
)

// Snapshot is one persisted version of a named record.
type Snapshot struct {
	// Name identifies the record the snapshot belongs to.
	Name string
	// Sequence is the version number, starting at 1 per name.
	Sequence int
	// Format is the serialization format Data is encoded in.
	Format storage.Format
	// Timestamp is when the snapshot was saved (UTC).
	Timestamp time.Time
	// Data is the encoded record.
	Data []byte
}

// Info provides snapshot metadata without loading the encoded record.
type Info struct {
	Name      string
	Sequence  int
	Format    storage.Format
	Timestamp time.Time
	Size      int64
}
