package storage

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/Uliboooo/easy-storage/pkg/storage/codec"
)

// errInvalidUTF8 reports a file whose bytes are not valid UTF-8 text.
// Reading is a text operation, so this is an I/O failure, not a decode
// failure of either format.
var errInvalidUTF8 = errors.New("file did not contain valid UTF-8")

// codecFor returns the codec implementing a format.
func codecFor(f Format) codec.Codec {
	if f == FormatTOML {
		return codec.TOML{}
	}
	return codec.JSON{}
}

// Marshal encodes v as pretty-printed text in the given format without
// touching the filesystem. Failures carry the format's encode kind.
func Marshal(v any, f Format) ([]byte, error) {
	data, err := codecFor(f).Marshal(v)
	if err != nil {
		return nil, &Error{Kind: encodeKind(f), Err: err}
	}
	return data, nil
}

// Unmarshal decodes data in the given format into a fresh T.
// Failures carry the format's decode kind.
func Unmarshal[T any](data []byte, f Format) (T, error) {
	var v T
	if err := codecFor(f).Unmarshal(data, &v); err != nil {
		var zero T
		return zero, &Error{Kind: decodeKind(f), Err: err}
	}
	return v, nil
}

// Save encodes v in the given format and writes it to path.
//
// The file is opened for writing with truncation; createMissing controls
// whether a missing file is created or the open fails. Encoding happens
// before the file is touched, so an encode failure leaves the filesystem
// untouched. A write that fails partway leaves the file as the filesystem
// left it; no rename swap or restore is attempted.
func Save(v any, path string, createMissing bool, f Format) error {
	data, err := Marshal(v, f)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_TRUNC
	if createMissing {
		flags |= os.O_CREATE
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errIO(err)
	}

	_, werr := file.Write(data)
	cerr := file.Close()
	if werr != nil {
		return errIO(werr)
	}
	if cerr != nil {
		return errIO(cerr)
	}
	return nil
}

// SaveByExtension saves v in the format inferred from path's extension.
// An unsupported or missing extension fails before any file is touched.
func SaveByExtension(v any, path string, createMissing bool) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	return Save(v, path, createMissing, f)
}

// Load reads the file at path as UTF-8 text and decodes it into a fresh T.
// A file with invalid encoding is a KindIO failure, never a lossy decode.
// On any failure the zero value of T is returned alongside the error;
// a partially decoded record is never handed back.
func Load[T any](path string, f Format) (T, error) {
	var v T

	data, err := os.ReadFile(path)
	if err != nil {
		return v, errIO(err)
	}
	if !utf8.Valid(data) {
		return v, errIO(errInvalidUTF8)
	}
	return Unmarshal[T](data, f)
}

// LoadByExtension loads a T in the format inferred from path's extension.
// An unsupported or missing extension fails before any file read.
func LoadByExtension[T any](path string) (T, error) {
	f, err := FormatForPath(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return Load[T](path, f)
}
