package orcproto

import (
	"fmt"

	"github.com/colbeam/orc/errs"
)

// ColumnStatistics carries the handful of column-statistics fields this
// core bothers decoding. The real message is a large oneof of per-type
// statistics (int min/max/sum, string min/max, bucket counts, and so on);
// row-index navigation and predicate pushdown are out of scope, so nothing
// here reads past the two fields common to every column.
type ColumnStatistics struct {
	NumberOfValues uint64
	HasNull        bool
}

func decodeColumnStatistics(b []byte) (ColumnStatistics, error) {
	var cs ColumnStatistics

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return ColumnStatistics{}, err
		}
		b = rest

		switch f.num {
		case 1:
			cs.NumberOfValues = f.varint
		case 10:
			cs.HasNull = f.varint != 0
		}
	}

	return cs, nil
}

// StripeStatistics is one stripe's per-column statistics, indexed the same
// way as Footer.Types: ColStats[0] is the root.
type StripeStatistics struct {
	ColStats []ColumnStatistics
}

func decodeStripeStatistics(b []byte) (StripeStatistics, error) {
	var ss StripeStatistics

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return StripeStatistics{}, err
		}
		b = rest

		if f.num == 1 {
			cs, err := decodeColumnStatistics(f.bytes)
			if err != nil {
				return StripeStatistics{}, err
			}
			ss.ColStats = append(ss.ColStats, cs)
		}
	}

	return ss, nil
}

// Metadata is the file's optional statistics region: one StripeStatistics
// per stripe, in file order. Nothing downstream of DecodeMetadata consumes
// these beyond exposing them structurally.
type Metadata struct {
	StripeStats []StripeStatistics
}

// DecodeMetadata parses the Metadata message out of b.
func DecodeMetadata(b []byte) (Metadata, error) {
	var md Metadata

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return Metadata{}, err
		}
		b = rest

		if f.num == 1 {
			ss, err := decodeStripeStatistics(f.bytes)
			if err != nil {
				return Metadata{}, fmt.Errorf("%w: stripe statistics %d: %v", errs.ErrInvalidProto, len(md.StripeStats), err)
			}
			md.StripeStats = append(md.StripeStats, ss)
		}
	}

	return md, nil
}
