package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Uliboooo/easy-storage/pkg/storage"
)

// FileStore keeps snapshots as plain files in a directory, one file per
// version, named "<name>.<sequence>.<format>". Because the format rides in
// the extension, the files can be read back directly with
// storage.LoadByExtension outside the store.
type FileStore struct {
	dir    string
	mu     sync.RWMutex
	closed bool
}

// NewFileStore creates a file snapshot store rooted at dir.
// The directory is created if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

// fileName returns the on-disk name for one version.
func fileName(name string, sequence int, format storage.Format) string {
	return fmt.Sprintf("%s.%d.%s", name, sequence, format)
}

// parseFileName splits an on-disk name back into its parts.
// Returns ok=false for files that don't belong to the store's layout.
func parseFileName(base string) (name string, sequence int, format storage.Format, ok bool) {
	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil || seq < 1 {
		return "", 0, 0, false
	}
	f, err := storage.ParseFormat(parts[2])
	if err != nil {
		return "", 0, 0, false
	}
	return parts[0], seq, f, true
}

// Save implements Store.
func (s *FileStore) Save(name string, format storage.Format, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	infos, err := s.listLocked(name)
	if err != nil {
		return err
	}
	seq := 1
	if len(infos) > 0 {
		seq = infos[len(infos)-1].Sequence + 1
	}

	// Write under a unique temp name, then rename into place so a crash
	// mid-write never leaves a half-written version visible.
	tmp := filepath.Join(s.dir, fmt.Sprintf("%s-%s.tmp", name, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	final := filepath.Join(s.dir, fileName(name, seq, format))
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// Latest implements Store.
func (s *FileStore) Latest(name string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	infos, err := s.listLocked(name)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, ErrNotFound
	}
	return s.readLocked(infos[len(infos)-1])
}

// Version implements Store.
func (s *FileStore) Version(name string, sequence int) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	infos, err := s.listLocked(name)
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		if info.Sequence == sequence {
			return s.readLocked(info)
		}
	}
	return nil, ErrNotFound
}

// readLocked loads the snapshot a listing entry points at.
// Callers must hold at least the read lock.
func (s *FileStore) readLocked(info Info) (*Snapshot, error) {
	path := filepath.Join(s.dir, fileName(info.Name, info.Sequence, info.Format))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return &Snapshot{
		Name:      info.Name,
		Sequence:  info.Sequence,
		Format:    info.Format,
		Timestamp: info.Timestamp,
		Data:      data,
	}, nil
}

// List implements Store.
func (s *FileStore) List(name string) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	return s.listLocked(name)
}

// listLocked scans the directory for one name's versions, ordered by
// sequence. Callers must hold at least the read lock.
func (s *FileStore) listLocked(name string) ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		entryName, seq, format, ok := parseFileName(entry.Name())
		if !ok || entryName != name {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat snapshot: %w", err)
		}
		infos = append(infos, Info{
			Name:      name,
			Sequence:  seq,
			Format:    format,
			Timestamp: fi.ModTime().UTC(),
			Size:      fi.Size(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Sequence < infos[j].Sequence
	})
	return infos, nil
}

// Delete implements Store.
func (s *FileStore) Delete(name string, sequence int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	infos, err := s.listLocked(name)
	if err != nil {
		return err
	}
	for _, info := range infos {
		if info.Sequence == sequence {
			path := filepath.Join(s.dir, fileName(name, sequence, info.Format))
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("delete snapshot: %w", err)
			}
			return nil
		}
	}
	return nil
}

// DeleteAll implements Store.
func (s *FileStore) DeleteAll(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	infos, err := s.listLocked(name)
	if err != nil {
		return err
	}
	for _, info := range infos {
		path := filepath.Join(s.dir, fileName(name, info.Sequence, info.Format))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete snapshot: %w", err)
		}
	}
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
