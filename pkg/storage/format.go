package storage

import "path/filepath"

// Format selects the on-disk serialization format for a single operation.
type Format int

const (
	// FormatJSON encodes records as pretty-printed JSON.
	FormatJSON Format = iota

	// FormatTOML encodes records as pretty-printed TOML.
	FormatTOML
)

// String returns the format name, which doubles as its file extension.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat maps an extension string to a Format.
// Matching is exact and case-sensitive: only "json" and "toml" are
// recognized ("JSON", "jsn" and the empty string are not).
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, errUnknownExtension()
	}
}

// FormatForPath infers the format from the extension of path's final
// segment. It is pure string inspection: the path is never touched on disk
// and need not exist.
//
// The extension is the substring after the last dot of the filename. A name
// with no dot, or a name that is only a leading-dot segment (".json"), has
// no extension and fails with KindUnknownExtension.
func FormatForPath(path string) (Format, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return 0, errUnknownExtension()
	}
	return ParseFormat(ext[1:])
}
