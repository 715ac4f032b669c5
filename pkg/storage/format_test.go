package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uliboooo/easy-storage/pkg/storage"
)

// TestFormatString verifies format names double as extensions.
func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", storage.FormatJSON.String())
	assert.Equal(t, "toml", storage.FormatTOML.String())
	assert.Equal(t, "unknown", storage.Format(99).String())
}

// TestParseFormat verifies exact, case-sensitive extension matching.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    storage.Format
		wantErr bool
	}{
		{"json", "json", storage.FormatJSON, false},
		{"toml", "toml", storage.FormatTOML, false},
		{"uppercase json", "JSON", 0, true},
		{"uppercase toml", "TOML", 0, true},
		{"alias", "jsn", 0, true},
		{"yaml", "yaml", 0, true},
		{"empty", "", 0, true},
		{"dotted", ".json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.ParseFormat(tt.in)
			if tt.wantErr {
				requireUnknownExtension(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestFormatForPath verifies extension inference over whole paths.
func TestFormatForPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    storage.Format
		wantErr bool
	}{
		{"json file", "user.json", storage.FormatJSON, false},
		{"toml file", "user.toml", storage.FormatTOML, false},
		{"nested path", "a/b/c/settings.toml", storage.FormatTOML, false},
		{"absolute path", "/etc/app/state.json", storage.FormatJSON, false},
		{"compound extension", "backup.tar.toml", storage.FormatTOML, false},
		{"no extension", "README", 0, true},
		{"trailing dot", "user.", 0, true},
		{"unsupported extension", "config.yaml", 0, true},
		{"uppercase extension", "user.JSON", 0, true},
		{"dot only in directory", "some.dir/user", 0, true},
		{"leading-dot name only", ".json", 0, true},
		{"empty path", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.FormatForPath(tt.path)
			if tt.wantErr {
				requireUnknownExtension(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// requireUnknownExtension asserts err is the taxonomy's extension failure.
func requireUnknownExtension(t *testing.T, err error) {
	t.Helper()
	var serr *storage.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, storage.KindUnknownExtension, serr.Kind)
	assert.Nil(t, errors.Unwrap(serr))
}
