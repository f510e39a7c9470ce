package rle

import (
	"fmt"
	"io"
	"math"

	"github.com/colbeam/orc/endian"
	"github.com/colbeam/orc/errs"
)

// Float32Decoder reads a fixed-count sequence of little-endian 32-bit
// floats off a Data stream.
type Float32Decoder struct {
	r         io.Reader
	engine    endian.EndianEngine
	remaining int
}

// NewFloat32Decoder returns a decoder yielding exactly length float32s
// from r.
func NewFloat32Decoder(r io.Reader, length int) *Float32Decoder {
	return &Float32Decoder{r: r, engine: endian.GetLittleEndianEngine(), remaining: length}
}

// Next returns the next float32. ok is false once length values have been
// produced.
func (d *Float32Decoder) Next() (value float32, ok bool, err error) {
	if d.remaining == 0 {
		return 0, false, nil
	}

	var buf [4]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, false, fmt.Errorf("%w: %v", errs.ErrDecodeFloat, err)
	}

	d.remaining--

	return math.Float32frombits(d.engine.Uint32(buf[:])), true, nil
}

// Float64Decoder reads a fixed-count sequence of little-endian 64-bit
// floats off a Data stream.
type Float64Decoder struct {
	r         io.Reader
	engine    endian.EndianEngine
	remaining int
}

// NewFloat64Decoder returns a decoder yielding exactly length float64s
// from r.
func NewFloat64Decoder(r io.Reader, length int) *Float64Decoder {
	return &Float64Decoder{r: r, engine: endian.GetLittleEndianEngine(), remaining: length}
}

// Next returns the next float64. ok is false once length values have been
// produced.
func (d *Float64Decoder) Next() (value float64, ok bool, err error) {
	if d.remaining == 0 {
		return 0, false, nil
	}

	var buf [8]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, false, fmt.Errorf("%w: %v", errs.ErrDecodeFloat, err)
	}

	d.remaining--

	return math.Float64frombits(d.engine.Uint64(buf[:])), true, nil
}
