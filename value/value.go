// Package value composes a column.Column's streams into typed Go values:
// a validity bitmap plus the valid-only payload for booleans, integers,
// floats and (direct or dictionary encoded) strings.
package value

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/colbeam/orc/column"
	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/format"
	"github.com/colbeam/orc/internal/pool"
	"github.com/colbeam/orc/rle"
)

// ReadValidity decodes col's Present stream into a per-row validity bitmap.
// A column with no Present stream has every row valid.
func ReadValidity(col *column.Column, scratch *pool.ByteBuffer) ([]bool, error) {
	n := int(col.NumRows())

	if !col.HasStream(format.StreamPresent) {
		out := make([]bool, n)
		for i := range out {
			out[i] = true
		}

		return out, nil
	}

	dec, err := col.GetStream(format.StreamPresent, scratch)
	if err != nil {
		return nil, err
	}

	boolDec := rle.NewBoolDecoder(dec.Reader(), n)

	out := make([]bool, 0, n)
	for {
		v, ok, err := boolDec.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		out = append(out, v)
	}

	return out, nil
}

func popcount(validity []bool) int {
	n := 0
	for _, v := range validity {
		if v {
			n++
		}
	}

	return n
}

// readUnsignedLengths drains exactly n values off col's Length stream,
// flattening RLE v2 runs as it goes.
func readUnsignedLengths(col *column.Column, scratch *pool.ByteBuffer, n int) ([]uint64, error) {
	lenDec, err := col.GetStream(format.StreamLength, scratch)
	if err != nil {
		return nil, err
	}

	dec := rle.NewUnsignedDecoder(lenDec.Reader())

	out := make([]uint64, 0, n)
	for len(out) < n {
		run, ok, err := dec.NextRun()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: length stream exhausted before %d values", errs.ErrOutOfSpec, n)
		}

		out = append(out, run.Values...)
	}

	return out[:n], nil
}

// ReadBooleans decodes col's Data stream as a boolean RLE v1 sequence,
// clamped to the number of valid rows.
func ReadBooleans(col *column.Column, scratch *pool.ByteBuffer) (validity []bool, values []bool, err error) {
	validity, err = ReadValidity(col, scratch)
	if err != nil {
		return nil, nil, err
	}

	n := popcount(validity)

	dataDec, err := col.GetStream(format.StreamData, scratch)
	if err != nil {
		return nil, nil, err
	}

	boolDec := rle.NewBoolDecoder(dataDec.Reader(), n)

	values = make([]bool, 0, n)
	for {
		v, ok, err := boolDec.Next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}

		values = append(values, v)
	}

	return validity, values, nil
}

// ReadInt64s decodes col's Data stream as a signed RLE v2 sequence,
// clamped to the number of valid rows.
func ReadInt64s(col *column.Column, scratch *pool.ByteBuffer) (validity []bool, values []int64, err error) {
	validity, err = ReadValidity(col, scratch)
	if err != nil {
		return nil, nil, err
	}

	n := popcount(validity)

	dataDec, err := col.GetStream(format.StreamData, scratch)
	if err != nil {
		return nil, nil, err
	}

	dec := rle.NewSignedDecoder(dataDec.Reader())

	values = make([]int64, 0, n)
	for len(values) < n {
		run, ok, err := dec.NextRun()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: int64 data stream exhausted before %d values", errs.ErrOutOfSpec, n)
		}

		values = append(values, run.Values...)
	}

	return validity, values[:n], nil
}

// ReadFloat32s decodes col's Data stream as a sequence of little-endian
// f32s, clamped to the number of valid rows.
func ReadFloat32s(col *column.Column, scratch *pool.ByteBuffer) (validity []bool, values []float32, err error) {
	validity, err = ReadValidity(col, scratch)
	if err != nil {
		return nil, nil, err
	}

	n := popcount(validity)

	dataDec, err := col.GetStream(format.StreamData, scratch)
	if err != nil {
		return nil, nil, err
	}

	dec := rle.NewFloat32Decoder(dataDec.Reader(), n)

	values = make([]float32, 0, n)
	for {
		v, ok, err := dec.Next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}

		values = append(values, v)
	}

	return validity, values, nil
}

// ReadFloat64s decodes col's Data stream as a sequence of little-endian
// f64s, clamped to the number of valid rows.
func ReadFloat64s(col *column.Column, scratch *pool.ByteBuffer) (validity []bool, values []float64, err error) {
	validity, err = ReadValidity(col, scratch)
	if err != nil {
		return nil, nil, err
	}

	n := popcount(validity)

	dataDec, err := col.GetStream(format.StreamData, scratch)
	if err != nil {
		return nil, nil, err
	}

	dec := rle.NewFloat64Decoder(dataDec.Reader(), n)

	values = make([]float64, 0, n)
	for {
		v, ok, err := dec.Next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}

		values = append(values, v)
	}

	return validity, values, nil
}

// ReadDirectStrings decodes col's Length stream (unsigned RLE v2) to find
// each valid row's byte length, then slices that many raw UTF-8 bytes off
// the Data stream per row.
func ReadDirectStrings(col *column.Column, scratch *pool.ByteBuffer) (validity []bool, values []string, err error) {
	validity, err = ReadValidity(col, scratch)
	if err != nil {
		return nil, nil, err
	}

	n := popcount(validity)

	lengths, err := readUnsignedLengths(col, scratch, n)
	if err != nil {
		return nil, nil, err
	}

	dataDec, err := col.GetStream(format.StreamData, scratch)
	if err != nil {
		return nil, nil, err
	}
	r := dataDec.Reader()

	values = make([]string, n)
	for i, l := range lengths {
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, nil, fmt.Errorf("%w: direct string %d: %v", errs.ErrOutOfSpec, i, err)
		}
		if !utf8.Valid(buf) {
			return nil, nil, fmt.Errorf("%w: direct string %d", errs.ErrInvalidUTF8, i)
		}

		values[i] = string(buf)
	}

	return validity, values, nil
}

// ReadDictionaryStrings builds col's string dictionary from its
// DictionaryData and Length streams (Length-count == dictionary size),
// then decodes col's Data stream as an unsigned RLE v2 sequence of indices
// into that dictionary.
func ReadDictionaryStrings(col *column.Column, scratch *pool.ByteBuffer) (validity []bool, values []string, err error) {
	validity, err = ReadValidity(col, scratch)
	if err != nil {
		return nil, nil, err
	}

	n := popcount(validity)
	dictSize := int(col.Encoding().DictionarySize)

	dictLengths, err := readUnsignedLengths(col, scratch, dictSize)
	if err != nil {
		return nil, nil, err
	}

	dictDataDec, err := col.GetStream(format.StreamDictionaryData, scratch)
	if err != nil {
		return nil, nil, err
	}
	dictReader := dictDataDec.Reader()

	dict := make([]string, dictSize)
	for i, l := range dictLengths {
		buf := make([]byte, l)
		if _, err := io.ReadFull(dictReader, buf); err != nil {
			return nil, nil, fmt.Errorf("%w: dictionary entry %d: %v", errs.ErrOutOfSpec, i, err)
		}
		if !utf8.Valid(buf) {
			return nil, nil, fmt.Errorf("%w: dictionary entry %d", errs.ErrInvalidUTF8, i)
		}

		dict[i] = string(buf)
	}

	idxDec, err := col.GetStream(format.StreamData, scratch)
	if err != nil {
		return nil, nil, err
	}

	dec := rle.NewUnsignedDecoder(idxDec.Reader())

	indices := make([]uint64, 0, n)
	for len(indices) < n {
		run, ok, err := dec.NextRun()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: dictionary index stream exhausted before %d values", errs.ErrOutOfSpec, n)
		}

		indices = append(indices, run.Values...)
	}
	indices = indices[:n]

	values = make([]string, n)
	for i, idx := range indices {
		if idx >= uint64(dictSize) {
			return nil, nil, fmt.Errorf("%w: dictionary index %d out of range (size %d)", errs.ErrOutOfSpec, idx, dictSize)
		}

		values[i] = dict[idx]
	}

	return validity, values, nil
}
