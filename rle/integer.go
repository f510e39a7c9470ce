package rle

import (
	"fmt"
	"io"

	"github.com/colbeam/orc/bitpack"
	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/varint"
)

// RunKind identifies which of the four RLE v2 sub-encodings produced a run.
type RunKind uint8

const (
	RunShortRepeat RunKind = iota
	RunDirect
	RunPatchedBase
	RunDelta
)

func (k RunKind) String() string {
	switch k {
	case RunShortRepeat:
		return "ShortRepeat"
	case RunDirect:
		return "Direct"
	case RunPatchedBase:
		return "PatchedBase"
	case RunDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

// dispatchKind reads the sub-encoding off the top two bits of an RLE v2
// header byte.
func dispatchKind(header byte) RunKind {
	switch header & 0xC0 {
	case 0xC0:
		return RunDelta
	case 0x80:
		return RunPatchedBase
	case 0x40:
		return RunDirect
	default:
		return RunShortRepeat
	}
}

// directBitWidth maps a Direct/Delta run's 5-bit width selector to a packed
// bit width. Selectors outside this table are not valid ORC and fail
// rather than being interpolated.
func directBitWidth(sel byte) (uint, error) {
	switch sel {
	case 0:
		return 1, nil
	case 1:
		return 2, nil
	case 3:
		return 4, nil
	case 7:
		return 8, nil
	case 15:
		return 16, nil
	case 23:
		return 24, nil
	case 27:
		return 32, nil
	case 28:
		return 40, nil
	case 29:
		return 48, nil
	case 30:
		return 56, nil
	case 31:
		return 64, nil
	default:
		return 0, fmt.Errorf("%w: rle v2 direct bit-width selector %d", errs.ErrOutOfSpec, sel)
	}
}

// deltaBitWidth is directBitWidth except selector 0 means a zero-width
// (constant-step) delta run instead of 1 bit.
func deltaBitWidth(sel byte) (uint, error) {
	if sel == 0 {
		return 0, nil
	}

	return directBitWidth(sel)
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

// singleByteReader adapts an io.Reader to io.ByteReader one byte at a time,
// without the read-ahead buffering bufio.Reader would introduce — callers
// share the same underlying stream across multiple decode steps and a
// buffered reader would silently consume bytes meant for the next step.
type singleByteReader struct{ r io.Reader }

func (s singleByteReader) ReadByte() (byte, error) { return readByte(s.r) }

func parseShortRepeat(header byte, r io.Reader) (value uint64, count int, err error) {
	width := int((header&0b00111000)>>3) + 1
	count = int(header&0b00000111) + 3

	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, 0, fmt.Errorf("%w: rle v2 short-repeat value: %v", errs.ErrOutOfSpec, err)
	}

	for _, b := range buf {
		value = value<<8 | uint64(b)
	}

	return value, count, nil
}

// directLength reads the header's second byte and combines it with the
// header's low bit to form a run length in 1..512.
func directLength(header byte, r io.Reader) (int, error) {
	h1, err := readByte(r)
	if err != nil {
		return 0, fmt.Errorf("%w: rle v2 length byte: %v", errs.ErrOutOfSpec, err)
	}

	lengthBit := header & 0b1

	return int(lengthBit)<<8 | int(h1) + 1, nil
}

func parseDirect(header byte, r io.Reader) ([]uint64, error) {
	bitWidth, err := directBitWidth((header & 0b00111110) >> 1)
	if err != nil {
		return nil, err
	}

	length, err := directLength(header, r)
	if err != nil {
		return nil, err
	}

	nbytes := (int(bitWidth)*length + 7) / 8
	data := make([]byte, nbytes)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: rle v2 direct values: %v", errs.ErrOutOfSpec, err)
	}

	values := make([]uint64, length)
	bitpack.BatchUnpack(data, bitWidth, length, values)

	return values, nil
}

// parseDelta reads a Delta run's header tail, returning its raw (not yet
// zigzag-decoded) base, its signed delta step, and the unpacked magnitude
// of each subsequent delta (for a zero-width run, delta_base's magnitude
// repeated). Callers decide how to interpret base depending
// on whether they're decoding an unsigned or signed column.
func parseDelta(header byte, r io.Reader) (base uint64, deltaBase int64, deltas []uint64, length int, err error) {
	bitWidth, err := deltaBitWidth((header & 0b00111110) >> 1)
	if err != nil {
		return 0, 0, nil, 0, err
	}

	length, err = directLength(header, r)
	if err != nil {
		return 0, 0, nil, 0, err
	}

	br := singleByteReader{r}

	base, err = varint.ReadUnsignedVarint(br)
	if err != nil {
		return 0, 0, nil, 0, err
	}

	deltaBase, err = varint.ReadSignedVarint(br)
	if err != nil {
		return 0, 0, nil, 0, err
	}

	remaining := length - 2
	if remaining <= 0 {
		return base, deltaBase, nil, length, nil
	}

	if bitWidth == 0 {
		step := uint64(deltaBase)
		if deltaBase < 0 {
			step = uint64(-deltaBase)
		}

		deltas = make([]uint64, remaining)
		for i := range deltas {
			deltas[i] = step
		}

		return base, deltaBase, deltas, length, nil
	}

	nbytes := (remaining*int(bitWidth) + 7) / 8
	data := make([]byte, nbytes)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, 0, nil, 0, fmt.Errorf("%w: rle v2 delta values: %v", errs.ErrOutOfSpec, err)
	}

	deltas = make([]uint64, remaining)
	bitpack.BatchUnpack(data, bitWidth, remaining, deltas)

	return base, deltaBase, deltas, length, nil
}

// UnsignedRun is one decoded RLE v2 run of unsigned 64-bit values.
type UnsignedRun struct {
	Kind   RunKind
	Values []uint64
}

// UnsignedDecoder decodes a stream of RLE v2 runs into u64 values, used for
// unsigned Data and Length streams.
type UnsignedDecoder struct {
	r io.Reader
}

// NewUnsignedDecoder returns a decoder reading RLE v2 runs from r.
func NewUnsignedDecoder(r io.Reader) *UnsignedDecoder {
	return &UnsignedDecoder{r: r}
}

// NextRun decodes and returns the next run. ok is false once the stream is
// cleanly exhausted (no more header bytes to read).
func (d *UnsignedDecoder) NextRun() (run UnsignedRun, ok bool, err error) {
	header, err := readByte(d.r)
	if err != nil {
		if err == io.EOF {
			return UnsignedRun{}, false, nil
		}

		return UnsignedRun{}, false, fmt.Errorf("%w: rle v2 header: %v", errs.ErrOutOfSpec, err)
	}

	kind := dispatchKind(header)

	switch kind {
	case RunShortRepeat:
		value, count, err := parseShortRepeat(header, d.r)
		if err != nil {
			return UnsignedRun{}, false, err
		}

		values := make([]uint64, count)
		for i := range values {
			values[i] = value
		}

		return UnsignedRun{Kind: kind, Values: values}, true, nil

	case RunDirect:
		values, err := parseDirect(header, d.r)
		if err != nil {
			return UnsignedRun{}, false, err
		}

		return UnsignedRun{Kind: kind, Values: values}, true, nil

	case RunDelta:
		base, deltaBase, deltas, length, err := parseDelta(header, d.r)
		if err != nil {
			return UnsignedRun{}, false, err
		}

		return UnsignedRun{Kind: kind, Values: accumulateUnsignedDelta(base, deltaBase, deltas, length)}, true, nil

	default: // RunPatchedBase
		_, err := parsePatchedBaseLength(header, d.r)
		return UnsignedRun{Kind: kind}, false, err
	}
}

func accumulateUnsignedDelta(base uint64, deltaBase int64, deltas []uint64, length int) []uint64 {
	values := make([]uint64, length)
	if length == 0 {
		return values
	}

	values[0] = base
	if length == 1 {
		return values
	}

	if deltaBase >= 0 {
		values[1] = base + uint64(deltaBase)
	} else {
		values[1] = base - uint64(-deltaBase)
	}

	for i := 2; i < length; i++ {
		d := deltas[i-2]
		if deltaBase >= 0 {
			values[i] = values[i-1] + d
		} else {
			values[i] = values[i-1] - d
		}
	}

	return values
}

// parsePatchedBaseLength reads a Patched-Base run's full header and skips
// its base value, data and patch list, leaving the reader positioned at the
// next run's header. It returns the run's value count, recovered from the
// header alone, without materializing any of the patched values.
func parsePatchedBaseLength(header byte, r io.Reader) (length int, err error) {
	bitWidth, err := directBitWidth((header & 0b00111110) >> 1)
	if err != nil {
		return 0, err
	}

	length, err = directLength(header, r)
	if err != nil {
		return 0, err
	}

	tail, err := readByte(r)
	if err != nil {
		return 0, fmt.Errorf("%w: rle v2 patched-base third header byte: %v", errs.ErrOutOfSpec, err)
	}
	baseBytes := int((tail>>5)&0b111) + 1
	patchWidth, err := directBitWidth(tail & 0b00011111)
	if err != nil {
		return 0, err
	}

	gapAndLen, err := readByte(r)
	if err != nil {
		return 0, fmt.Errorf("%w: rle v2 patched-base fourth header byte: %v", errs.ErrOutOfSpec, err)
	}
	patchGapWidth := int((gapAndLen>>5)&0b111) + 1
	patchListLength := int(gapAndLen & 0b00011111)

	dataBytes := (length*int(bitWidth) + 7) / 8
	patchBytes := (patchListLength*(patchGapWidth+int(patchWidth)) + 7) / 8

	skip := make([]byte, baseBytes+dataBytes+patchBytes)
	if _, err := io.ReadFull(r, skip); err != nil {
		return 0, fmt.Errorf("%w: rle v2 patched-base body: %v", errs.ErrOutOfSpec, err)
	}

	return length, fmt.Errorf("%w: patched-base run of %d values", errs.ErrUnimplemented, length)
}

// SignedRun is one decoded RLE v2 run of signed 64-bit values.
type SignedRun struct {
	Kind   RunKind
	Values []int64
}

// SignedDecoder decodes a stream of RLE v2 runs into i64 values. Short-Repeat
// and Direct runs zigzag-decode each raw value; Delta runs zigzag-decode
// only the base and accumulate the rest in signed arithmetic.
type SignedDecoder struct {
	r io.Reader
}

// NewSignedDecoder returns a decoder reading RLE v2 runs from r.
func NewSignedDecoder(r io.Reader) *SignedDecoder {
	return &SignedDecoder{r: r}
}

// NextRun decodes and returns the next run. ok is false once the stream is
// cleanly exhausted.
func (d *SignedDecoder) NextRun() (run SignedRun, ok bool, err error) {
	header, err := readByte(d.r)
	if err != nil {
		if err == io.EOF {
			return SignedRun{}, false, nil
		}

		return SignedRun{}, false, fmt.Errorf("%w: rle v2 header: %v", errs.ErrOutOfSpec, err)
	}

	kind := dispatchKind(header)

	switch kind {
	case RunShortRepeat:
		value, count, err := parseShortRepeat(header, d.r)
		if err != nil {
			return SignedRun{}, false, err
		}

		signed := varint.Zigzag(value)
		values := make([]int64, count)
		for i := range values {
			values[i] = signed
		}

		return SignedRun{Kind: kind, Values: values}, true, nil

	case RunDirect:
		raw, err := parseDirect(header, d.r)
		if err != nil {
			return SignedRun{}, false, err
		}

		values := make([]int64, len(raw))
		for i, v := range raw {
			values[i] = varint.Zigzag(v)
		}

		return SignedRun{Kind: kind, Values: values}, true, nil

	case RunDelta:
		base, deltaBase, deltas, length, err := parseDelta(header, d.r)
		if err != nil {
			return SignedRun{}, false, err
		}

		return SignedRun{Kind: kind, Values: accumulateSignedDelta(varint.Zigzag(base), deltaBase, deltas, length)}, true, nil

	default: // RunPatchedBase
		_, err := parsePatchedBaseLength(header, d.r)
		return SignedRun{Kind: kind}, false, err
	}
}

func accumulateSignedDelta(base int64, deltaBase int64, deltas []uint64, length int) []int64 {
	values := make([]int64, length)
	if length == 0 {
		return values
	}

	values[0] = base
	if length == 1 {
		return values
	}

	if deltaBase >= 0 {
		values[1] = base + deltaBase
	} else {
		values[1] = base - (-deltaBase)
	}

	for i := 2; i < length; i++ {
		d := int64(deltas[i-2])
		if deltaBase >= 0 {
			values[i] = values[i-1] + d
		} else {
			values[i] = values[i-1] - d
		}
	}

	return values
}
