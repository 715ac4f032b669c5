package snapshot

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Uliboooo/easy-storage/pkg/storage"
)

// SQLiteStore persists snapshots to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite snapshot store.
// The path should be a file path (e.g., "./snapshots.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			format TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			data BLOB NOT NULL,
			PRIMARY KEY (name, sequence)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_snapshots_name
		ON snapshots(name)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(name string, format storage.Format, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	// Next sequence is max + 1 for this name
	_, err := s.db.Exec(`
		INSERT INTO snapshots (name, sequence, format, timestamp, data)
		VALUES (
			?,
			COALESCE((SELECT MAX(sequence) FROM snapshots WHERE name = ?), 0) + 1,
			?, ?, ?
		)
	`, name, name, format.String(), time.Now().UTC().Format(time.RFC3339Nano), data)

	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest implements Store.
func (s *SQLiteStore) Latest(name string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	return s.queryOne(`
		SELECT sequence, format, timestamp, data FROM snapshots
		WHERE name = ?
		ORDER BY sequence DESC
		LIMIT 1
	`, name, name)
}

// Version implements Store.
func (s *SQLiteStore) Version(name string, sequence int) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	return s.queryOne(`
		SELECT sequence, format, timestamp, data FROM snapshots
		WHERE name = ? AND sequence = ?
	`, name, name, sequence)
}

// queryOne runs a single-row snapshot query.
// Callers must hold at least the read lock.
func (s *SQLiteStore) queryOne(query, name string, args ...any) (*Snapshot, error) {
	var (
		snap      = Snapshot{Name: name}
		format    string
		timestamp string
	)
	err := s.db.QueryRow(query, args...).Scan(&snap.Sequence, &format, &timestamp, &snap.Data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	snap.Format, err = storage.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s/%d has unknown format %q", name, snap.Sequence, format)
	}
	snap.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
	return &snap, nil
}

// List implements Store.
func (s *SQLiteStore) List(name string) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT sequence, format, timestamp, LENGTH(data)
		FROM snapshots
		WHERE name = ?
		ORDER BY sequence
	`, name)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var (
			info      Info
			format    string
			timestamp string
		)
		if err := rows.Scan(&info.Sequence, &format, &timestamp, &info.Size); err != nil {
			return nil, fmt.Errorf("scan snapshot info: %w", err)
		}
		info.Name = name
		info.Format, _ = storage.ParseFormat(format)
		info.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}

	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(name string, sequence int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM snapshots
		WHERE name = ? AND sequence = ?
	`, name, sequence)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// DeleteAll implements Store.
func (s *SQLiteStore) DeleteAll(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM snapshots WHERE name = ?
	`, name)
	if err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
