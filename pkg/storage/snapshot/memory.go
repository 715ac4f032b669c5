package snapshot

import (
	"sync"
	"time"

	"github.com/Uliboooo/easy-storage/pkg/storage"
)

// MemoryStore is an in-memory snapshot store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string][]storedSnapshot // name -> versions ordered by sequence
	closed bool
}

// storedSnapshot holds one version's data with metadata for List().
type storedSnapshot struct {
	sequence  int
	format    storage.Format
	timestamp time.Time
	data      []byte
}

// NewMemoryStore creates a new in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]storedSnapshot),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(name string, format storage.Format, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	versions := m.data[name]
	seq := 1
	if len(versions) > 0 {
		seq = versions[len(versions)-1].sequence + 1
	}

	// Copy data to avoid retaining caller's slice
	stored := make([]byte, len(data))
	copy(stored, data)

	m.data[name] = append(versions, storedSnapshot{
		sequence:  seq,
		format:    format,
		timestamp: time.Now().UTC(),
		data:      stored,
	})

	return nil
}

// Latest implements Store.
func (m *MemoryStore) Latest(name string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	versions := m.data[name]
	if len(versions) == 0 {
		return nil, ErrNotFound
	}
	return m.snapshotLocked(name, versions[len(versions)-1]), nil
}

// Version implements Store.
func (m *MemoryStore) Version(name string, sequence int) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	for _, v := range m.data[name] {
		if v.sequence == sequence {
			return m.snapshotLocked(name, v), nil
		}
	}
	return nil, ErrNotFound
}

// snapshotLocked materializes a Snapshot with a defensive data copy.
// Callers must hold at least the read lock.
func (m *MemoryStore) snapshotLocked(name string, v storedSnapshot) *Snapshot {
	data := make([]byte, len(v.data))
	copy(data, v.data)
	return &Snapshot{
		Name:      name,
		Sequence:  v.sequence,
		Format:    v.format,
		Timestamp: v.timestamp,
		Data:      data,
	}
}

// List implements Store.
func (m *MemoryStore) List(name string) ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	versions := m.data[name]
	if len(versions) == 0 {
		return nil, nil
	}

	infos := make([]Info, 0, len(versions))
	for _, v := range versions {
		infos = append(infos, Info{
			Name:      name,
			Sequence:  v.sequence,
			Format:    v.format,
			Timestamp: v.timestamp,
			Size:      int64(len(v.data)),
		})
	}
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string, sequence int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	versions := m.data[name]
	for i, v := range versions {
		if v.sequence == sequence {
			m.data[name] = append(versions[:i], versions[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteAll implements Store.
func (m *MemoryStore) DeleteAll(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the total number of snapshots across all names.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, versions := range m.data {
		count += len(versions)
	}
	return count
}
