package snapshot

import (
	"fmt"

	"github.com/Uliboooo/easy-storage/pkg/storage/config"
)

// Config keys understood by FromConfig.
const (
	keyBackend = "backend"
	keyPath    = "path"
)

// FromConfig builds a snapshot store from configuration.
//
// Recognized settings:
//
//	backend: "memory", "sqlite", or "file" (default "memory")
//	path:    database file for sqlite, directory for file
func FromConfig(cfg config.Config) (Store, error) {
	backend := cfg.String(keyBackend, "memory")
	switch backend {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		path := cfg.String(keyPath, "")
		if path == "" {
			return nil, fmt.Errorf("sqlite backend requires a path")
		}
		return NewSQLiteStore(path)
	case "file":
		path := cfg.String(keyPath, "")
		if path == "" {
			return nil, fmt.Errorf("file backend requires a path")
		}
		return NewFileStore(path)
	default:
		return nil, fmt.Errorf("unknown snapshot backend: %s", backend)
	}
}
