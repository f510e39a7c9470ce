package rle

import (
	"fmt"
	"io"

	"github.com/colbeam/orc/errs"
)

// runKind distinguishes the two RLE v1 run shapes.
type runKind uint8

const (
	runLiteral runKind = iota
	runRepeat
)

// boolRun is one decoded RLE v1 run: either a sequence of literal bytes, or
// a single byte value understood to repeat byteCount times.
type boolRun struct {
	kind      runKind
	literal   []byte
	value     byte
	byteCount int
}

func (r boolRun) byteAt(i int) byte {
	if r.kind == runRepeat {
		return r.value
	}

	return r.literal[i]
}

// BoolDecoder decodes an RLE v1 boolean stream: runs of literal or repeated
// bytes, each byte's bits read out MSB-first, capped at a fixed total
// number of booleans.
type BoolDecoder struct {
	r         io.Reader
	remaining int

	have      bool
	run       boolRun
	byteIdx   int
	bitPos    uint
}

// NewBoolDecoder returns a decoder that yields exactly length booleans from
// r, the RLE v1 encoding of a Present or boolean Data stream.
func NewBoolDecoder(r io.Reader, length int) *BoolDecoder {
	return &BoolDecoder{r: r, remaining: length}
}

// Next returns the next boolean in the stream. ok is false once length
// values (as passed to NewBoolDecoder) have been produced.
func (d *BoolDecoder) Next() (value bool, ok bool, err error) {
	if d.remaining == 0 {
		return false, false, nil
	}

	if !d.have || d.byteIdx >= d.run.byteCount {
		if err := d.readRun(); err != nil {
			return false, false, err
		}
	}

	b := d.run.byteAt(d.byteIdx)
	mask := byte(0x80) >> d.bitPos
	value = b&mask == mask

	d.bitPos++
	d.remaining--
	if d.bitPos == 8 {
		d.bitPos = 0
		d.byteIdx++
	}

	return value, true, nil
}

func (d *BoolDecoder) readRun() error {
	var header [1]byte
	if _, err := io.ReadFull(d.r, header[:]); err != nil {
		return fmt.Errorf("%w: rle v1 header: %v", errs.ErrOutOfSpec, err)
	}

	h := int8(header[0])

	if h < 0 {
		length := int(-h)
		literal := make([]byte, length)
		if _, err := io.ReadFull(d.r, literal); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrRleLiteralTooLarge, err)
		}

		d.run = boolRun{kind: runLiteral, literal: literal, byteCount: length}
	} else {
		var value [1]byte
		if _, err := io.ReadFull(d.r, value[:]); err != nil {
			return fmt.Errorf("%w: rle v1 run value: %v", errs.ErrOutOfSpec, err)
		}

		d.run = boolRun{kind: runRepeat, value: value[0], byteCount: int(h) + 3}
	}

	d.have = true
	d.byteIdx = 0
	d.bitPos = 0

	return nil
}
