// Package varint decodes the base-128 unsigned varint and zigzag-signed
// integer encodings ORC uses for RLE v2 Delta bases and steps.
package varint

import (
	"fmt"
	"io"

	"github.com/colbeam/orc/errs"
)

// maxContinuationBytes bounds a varint to 10 bytes (70 bits of payload),
// the fewest that cover a full uint64 (nine bytes carry only 63 bits); a
// stream that hasn't terminated by then is malformed.
const maxContinuationBytes = 10

// ReadUnsignedVarint reads a base-128 varint from r: each byte contributes its
// low 7 bits, least-significant group first, and the high bit marks "more
// bytes follow". Fails with errs.ErrOutOfSpec if the stream doesn't
// terminate within 10 bytes.
func ReadUnsignedVarint(r io.ByteReader) (uint64, error) {
	var result uint64

	for i := 0; i < maxContinuationBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errs.ErrOutOfSpec, err)
		}

		result |= uint64(b&0x7F) << (uint(i) * 7)

		if b&0x80 == 0 {
			return result, nil
		}
	}

	return 0, fmt.Errorf("%w: varint exceeds %d continuation bytes", errs.ErrOutOfSpec, maxContinuationBytes)
}

// ReadSignedVarint reads an unsigned varint and zigzag-decodes it to a signed
// 64-bit value.
func ReadSignedVarint(r io.ByteReader) (int64, error) {
	z, err := ReadUnsignedVarint(r)
	if err != nil {
		return 0, err
	}

	return Zigzag(z), nil
}

// Zigzag decodes a zigzag-encoded unsigned value into a signed one:
// (z >> 1) ^ -(z & 1).
func Zigzag(z uint64) int64 {
	return int64(z>>1) ^ -int64(z&1)
}

// ZigzagEncode is the inverse of Zigzag, used by tests to build fixtures.
func ZigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}
