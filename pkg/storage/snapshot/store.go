// Package snapshot provides versioned snapshot storage for encoded records.
//
// A store keeps every saved version of a record under its name, so callers
// can load the latest version, roll back to an earlier one, or inspect the
// history. Backends: in-memory (testing), SQLite (single-process
// production), and a directory of plain files readable by the storage
// package.
package snapshot

import (
	"errors"
	"strings"

	"github.com/Uliboooo/easy-storage/pkg/storage"
)

// Store persists versioned snapshots of named records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save appends a new version of the named record.
	// The data must already be encoded in the given format.
	Save(name string, format storage.Format, data []byte) error

	// Latest returns the highest-sequence snapshot for a name.
	// Returns ErrNotFound if the name has no snapshots.
	Latest(name string) (*Snapshot, error)

	// Version returns a specific snapshot by sequence number.
	// Returns ErrNotFound if it doesn't exist.
	Version(name string, sequence int) (*Snapshot, error)

	// List returns metadata for all snapshots of a name, ordered by
	// sequence. Returns an empty slice (not an error) for unknown names.
	List(name string) ([]Info, error)

	// Delete removes one snapshot. Returns nil if it doesn't exist.
	Delete(name string, sequence int) error

	// DeleteAll removes every snapshot for a name.
	// Returns nil if the name has no snapshots.
	DeleteAll(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for snapshot operations.
var (
	// ErrNotFound indicates a snapshot doesn't exist.
	ErrNotFound = errors.New("snapshot not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("snapshot store closed")

	// ErrInvalidName indicates a record name the stores cannot represent.
	ErrInvalidName = errors.New("invalid snapshot name")
)

// validateName rejects names that would collide with the file store's
// on-disk layout. Every backend enforces the same rule so stores stay
// interchangeable.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "./\\") {
		return ErrInvalidName
	}
	return nil
}
