package storage

// Kind classifies a persistence failure.
type Kind int

const (
	// KindIO indicates a filesystem failure (open, read, write, close).
	KindIO Kind = iota

	// KindJSONEncode indicates a JSON serialization failure.
	KindJSONEncode

	// KindJSONDecode indicates a JSON deserialization failure.
	KindJSONDecode

	// KindTOMLEncode indicates a TOML serialization failure.
	KindTOMLEncode

	// KindTOMLDecode indicates a TOML deserialization failure.
	KindTOMLDecode

	// KindUnknownExtension indicates the path's extension is absent or not
	// one of the supported ones. It carries no underlying cause.
	KindUnknownExtension
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindJSONEncode:
		return "json_encode"
	case KindJSONDecode:
		return "json_decode"
	case KindTOMLEncode:
		return "toml_encode"
	case KindTOMLDecode:
		return "toml_decode"
	case KindUnknownExtension:
		return "unknown_extension"
	default:
		return "unknown"
	}
}

// Error is the single error type every operation in this package returns.
// Exactly one Kind is set per value; Err is nil only for
// KindUnknownExtension.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Err is the underlying cause, nil for KindUnknownExtension.
	Err error
}

// Error implements the error interface. Wrapped kinds defer to the
// underlying failure's own message so diagnostic detail (line/column of a
// parse error, errno of an I/O error) is preserved.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "extension does not exist"
}

// Unwrap returns the underlying cause for errors.Is/As support.
// It is nil for KindUnknownExtension.
func (e *Error) Unwrap() error {
	return e.Err
}

func errIO(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

func errUnknownExtension() *Error {
	return &Error{Kind: KindUnknownExtension}
}

// encodeKind returns the encode failure kind for a format.
func encodeKind(f Format) Kind {
	if f == FormatTOML {
		return KindTOMLEncode
	}
	return KindJSONEncode
}

// decodeKind returns the decode failure kind for a format.
func decodeKind(f Format) Kind {
	if f == FormatTOML {
		return KindTOMLDecode
	}
	return KindJSONDecode
}
