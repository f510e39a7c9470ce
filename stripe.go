package orc

import (
	"github.com/colbeam/orc/column"
	"github.com/colbeam/orc/filemeta"
	"github.com/colbeam/orc/internal/pool"
	"github.com/colbeam/orc/orcproto"
	"github.com/colbeam/orc/value"
)

// Stripe is one stripe's decoded footer, ready to locate and decode any of
// its columns.
type Stripe struct {
	file   *filemeta.File
	idx    int
	footer orcproto.StripeFooter
	info   orcproto.StripeInformation
}

// NumRows reports the stripe's row count.
func (s *Stripe) NumRows() uint64 { return s.info.NumberOfRows }

// Column locates columnID's stream region within the stripe. The returned
// column.Column's streams are still compressed; reading values through it
// decompresses lazily, one block at a time.
func (s *Stripe) Column(columnID int) (*column.Column, error) {
	return s.file.Column(s.idx, s.footer, columnID)
}

// Booleans decodes columnID as a boolean column.
func (s *Stripe) Booleans(columnID int, scratch *pool.ByteBuffer) (validity []bool, values []bool, err error) {
	col, err := s.Column(columnID)
	if err != nil {
		return nil, nil, err
	}

	return value.ReadBooleans(col, scratch)
}

// Int64s decodes columnID as a signed integer column.
func (s *Stripe) Int64s(columnID int, scratch *pool.ByteBuffer) (validity []bool, values []int64, err error) {
	col, err := s.Column(columnID)
	if err != nil {
		return nil, nil, err
	}

	return value.ReadInt64s(col, scratch)
}

// Float32s decodes columnID as an f32 column.
func (s *Stripe) Float32s(columnID int, scratch *pool.ByteBuffer) (validity []bool, values []float32, err error) {
	col, err := s.Column(columnID)
	if err != nil {
		return nil, nil, err
	}

	return value.ReadFloat32s(col, scratch)
}

// Float64s decodes columnID as an f64 column.
func (s *Stripe) Float64s(columnID int, scratch *pool.ByteBuffer) (validity []bool, values []float64, err error) {
	col, err := s.Column(columnID)
	if err != nil {
		return nil, nil, err
	}

	return value.ReadFloat64s(col, scratch)
}

// Strings decodes columnID as a string column, dispatching to direct or
// dictionary decoding based on the column's encoding.
func (s *Stripe) Strings(columnID int, scratch *pool.ByteBuffer) (validity []bool, values []string, err error) {
	col, err := s.Column(columnID)
	if err != nil {
		return nil, nil, err
	}

	if col.Encoding().Kind.IsDictionary() {
		return value.ReadDictionaryStrings(col, scratch)
	}

	return value.ReadDirectStrings(col, scratch)
}
