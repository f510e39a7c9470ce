package orcproto

import (
	"fmt"

	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/format"
)

// Stream names one byte range within a stripe's data region: which column
// it belongs to, what role it plays (Present/Data/Length/...), and how
// many bytes it occupies. A column reader locates a stream by scanning a
// StripeFooter's Streams in order and accumulating lengths.
type Stream struct {
	Kind   format.StreamKind
	Column uint32
	Length uint64
}

func decodeStream(b []byte) (Stream, error) {
	var s Stream

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return Stream{}, err
		}
		b = rest

		switch f.num {
		case 1:
			s.Kind = format.StreamKind(f.varint)
		case 2:
			s.Column = uint32(f.varint)
		case 3:
			s.Length = f.varint
		}
	}

	return s, nil
}

// ColumnEncoding names how one column's Data stream (and, for dictionary
// encodings, its DictionaryData/Length streams) is laid out.
type ColumnEncoding struct {
	Kind           format.ColumnEncodingKind
	DictionarySize uint32
}

func decodeColumnEncoding(b []byte) (ColumnEncoding, error) {
	var c ColumnEncoding

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return ColumnEncoding{}, err
		}
		b = rest

		switch f.num {
		case 1:
			c.Kind = format.ColumnEncodingKind(f.varint)
		case 2:
			c.DictionarySize = uint32(f.varint)
		}
	}

	return c, nil
}

// StripeFooter lists every stream and every column's encoding for one
// stripe, in the order column readers expect to scan them.
type StripeFooter struct {
	Streams        []Stream
	Columns        []ColumnEncoding
	WriterTimezone string
}

// DecodeStripeFooter parses the StripeFooter message out of b.
func DecodeStripeFooter(b []byte) (StripeFooter, error) {
	var sf StripeFooter

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return StripeFooter{}, err
		}
		b = rest

		switch f.num {
		case 1:
			s, err := decodeStream(f.bytes)
			if err != nil {
				return StripeFooter{}, fmt.Errorf("%w: stream %d: %v", errs.ErrInvalidProto, len(sf.Streams), err)
			}
			sf.Streams = append(sf.Streams, s)
		case 2:
			c, err := decodeColumnEncoding(f.bytes)
			if err != nil {
				return StripeFooter{}, fmt.Errorf("%w: column encoding %d: %v", errs.ErrInvalidProto, len(sf.Columns), err)
			}
			sf.Columns = append(sf.Columns, c)
		case 3:
			sf.WriterTimezone = string(f.bytes)
		}
	}

	return sf, nil
}
