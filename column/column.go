// Package column locates one stripe's one column's stream byte region and
// hands out a Decompressor for each of its streams.
package column

import (
	"fmt"

	"github.com/colbeam/orc/compress"
	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/format"
	"github.com/colbeam/orc/internal/pool"
	"github.com/colbeam/orc/orcproto"
)

type streamRegion struct {
	kind format.StreamKind
	data []byte
}

// Column borrows a slice of a stripe's (still-compressed) data region for
// each non-RowIndex stream belonging to one column id.
type Column struct {
	id          int
	numRows     uint64
	encoding    orcproto.ColumnEncoding
	compression format.CompressionKind
	regions     []streamRegion
}

// New locates columnID's streams within data, a stripe's raw data-region
// bytes, by walking streams (the full ordered stream list from the
// stripe's footer) and accumulating a prefix sum of every non-RowIndex
// stream's length — RowIndex streams live in the stripe's separate index
// region and never contribute to data-region offsets. columns is the
// stripe footer's per-column encoding array, indexed by column id.
func New(data []byte, streams []orcproto.Stream, columns []orcproto.ColumnEncoding, columnID int, numRows uint64, compression format.CompressionKind) (*Column, error) {
	if columnID < 0 || columnID >= len(columns) {
		return nil, errs.InvalidColumn(columnID)
	}

	var regions []streamRegion
	offset := 0
	for _, s := range streams {
		if s.Kind == format.StreamRowIndex {
			continue
		}

		length := int(s.Length)
		if offset+length > len(data) {
			return nil, fmt.Errorf("%w: column %d stream %s overruns stripe data region", errs.ErrOutOfSpec, s.Column, s.Kind)
		}

		if int(s.Column) == columnID {
			regions = append(regions, streamRegion{kind: s.Kind, data: data[offset : offset+length]})
		}

		offset += length
	}

	return &Column{
		id:          columnID,
		numRows:     numRows,
		encoding:    columns[columnID],
		compression: compression,
		regions:     regions,
	}, nil
}

// NumRows reports the column's row count, from its stripe's StripeInformation.
func (c *Column) NumRows() uint64 { return c.numRows }

// Encoding reports how the column's Data stream (and, for dictionary
// encodings, its DictionaryData/Length streams) is laid out.
func (c *Column) Encoding() orcproto.ColumnEncoding { return c.encoding }

// HasStream reports whether the column carries a stream of the given kind.
func (c *Column) HasStream(kind format.StreamKind) bool {
	for _, r := range c.regions {
		if r.kind == kind {
			return true
		}
	}

	return false
}

// GetStream returns a Decompressor over the column's stream of the
// requested kind, using scratch as its per-block inflate buffer. It fails
// with InvalidKind if that stream isn't present for this column.
func (c *Column) GetStream(kind format.StreamKind, scratch *pool.ByteBuffer) (*compress.Decompressor, error) {
	for _, r := range c.regions {
		if r.kind == kind {
			return compress.NewDecompressor(r.data, c.compression, scratch), nil
		}
	}

	return nil, errs.InvalidKind(c.id, kind)
}
