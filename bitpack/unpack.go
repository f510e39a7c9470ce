// Package bitpack extracts fixed-width, MSB-first packed integers out of a
// byte buffer.
//
// ORC's RLE v2 Direct and Delta sub-encodings store their values
// big-endian-packed at an arbitrary bit width (1..64): value k occupies bit
// range [k*w, (k+1)*w) of the buffer, counting from the high bit of the
// first byte. Unpack reconstructs one such value; BatchUnpack reconstructs
// a whole run at once with dedicated paths for the byte-aligned widths ORC
// actually uses.
package bitpack

import "encoding/binary"

// Unpack extracts the index-th bitWidth-bit value from buf.
//
// bitWidth 0 always yields 0. bitWidth may be as large as 64, in which case
// the full 64-bit word is returned. The caller is responsible for ensuring
// buf holds enough bytes to cover the requested index; Unpack panics on a
// short buffer, the same as any other out-of-range slice access.
func Unpack(buf []byte, bitWidth uint, index int) uint64 {
	if bitWidth == 0 {
		return 0
	}

	start := bitWidth * uint(index)
	end := start + bitWidth
	byteStart := start / 8
	byteEnd := (end + 7) / 8

	window := buf[byteStart:byteEnd]

	var a [8]byte
	for i, j := 0, len(window)-1; j >= 0; i, j = i+1, j-1 {
		a[i] = window[j]
	}
	bits := binary.LittleEndian.Uint64(a[:])

	offset := byteEnd*8 - end

	return (bits >> offset) & mask(bitWidth)
}

func mask(bitWidth uint) uint64 {
	if bitWidth >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << bitWidth) - 1
}

// BatchUnpack unpacks count consecutive bitWidth-bit values from buf into
// dst, which must have length count.
//
// Byte-aligned widths (8, 16, 24, 32, 40, 48, 56, 64) are handled with a
// direct big-endian read per value instead of going through Unpack's
// generic bit-shifting path.
func BatchUnpack(buf []byte, bitWidth uint, count int, dst []uint64) {
	switch bitWidth {
	case 0:
		for i := range dst[:count] {
			dst[i] = 0
		}
	case 8, 16, 24, 32, 40, 48, 56, 64:
		batchUnpackAligned(buf, bitWidth, count, dst)
	default:
		for i := 0; i < count; i++ {
			dst[i] = Unpack(buf, bitWidth, i)
		}
	}
}

func batchUnpackAligned(buf []byte, bitWidth uint, count int, dst []uint64) {
	widthBytes := int(bitWidth / 8)

	for i := 0; i < count; i++ {
		off := i * widthBytes

		var v uint64
		for _, b := range buf[off : off+widthBytes] {
			v = v<<8 | uint64(b)
		}

		dst[i] = v
	}
}
