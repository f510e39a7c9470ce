// Package errs defines the sentinel errors returned by the orc decoder stack.
//
// Every exported error in this package is meant to be matched with
// errors.Is, never by string comparison. Higher layers wrap these sentinels
// with fmt.Errorf("%w: ...") to attach context (which column, which stream,
// which offset) without losing the underlying kind.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpec covers any violation of the ORC file-format contract:
	// short reads, impossible lengths, missing required postscript fields,
	// out-of-range indices.
	ErrOutOfSpec = errors.New("orc: out of spec")

	// ErrRleLiteralTooLarge is returned when an RLE v1 literal run declares
	// more bytes than remain in the stream.
	ErrRleLiteralTooLarge = errors.New("orc: rle v1 literal run too large")

	// ErrInvalidUTF8 is returned when string bytes decoded from a Data
	// stream are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("orc: invalid utf-8")

	// ErrDecodeFloat is returned on a short read while decoding a float.
	ErrDecodeFloat = errors.New("orc: float decode failed")

	// ErrDecompression is returned when a DEFLATE block fails to decode.
	ErrDecompression = errors.New("orc: decompression failed")

	// ErrInvalidProto is returned when a protobuf message fails to decode.
	ErrInvalidProto = errors.New("orc: invalid protobuf message")

	// ErrUnsupportedCompression is returned when a stream claims a
	// compression kind this core does not implement (anything but
	// None/Zlib).
	ErrUnsupportedCompression = errors.New("orc: unsupported compression kind")

	// ErrUnimplemented is returned by RLE v2 Patched-Base runs: the header
	// is parsed far enough to know the run's length, but its values are not
	// materialized.
	ErrUnimplemented = errors.New("orc: unimplemented")
)

// InvalidColumn reports that a requested column id is not present in a stripe.
func InvalidColumn(id int) error {
	return fmt.Errorf("%w: column %d not present in stripe", ErrOutOfSpec, id)
}

// InvalidKind reports that a requested stream kind is absent for a column.
func InvalidKind(column int, kind fmt.Stringer) error {
	return fmt.Errorf("%w: column %d has no %s stream", ErrOutOfSpec, column, kind)
}
