package orcproto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/format"
)

// StripeInformation locates one stripe within the file: its byte offset
// and the lengths of its three regions (row index, row data, footer).
type StripeInformation struct {
	Offset       uint64
	IndexLength  uint64
	DataLength   uint64
	FooterLength uint64
	NumberOfRows uint64
}

// End returns the offset one past the stripe's last byte.
func (s StripeInformation) End() uint64 {
	return s.Offset + s.IndexLength + s.DataLength + s.FooterLength
}

// Type is one node of the file's schema tree, parent-first: index 0 is
// always the root. The value adapters decode a column's streams without
// consulting its Type; orcdump's dump command only decodes the scalar
// Kinds (Boolean, Byte/Short/Int/Long, Float/Double, String/Varchar/Char)
// and reports any other Kind as unsupported. List/Map/Struct/Union nodes
// are walkable here.
type Type struct {
	Kind       format.TypeKind
	Subtypes   []uint32
	FieldNames []string
}

func decodeType(b []byte) (Type, error) {
	var t Type

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return Type{}, err
		}
		b = rest

		switch f.num {
		case 1:
			t.Kind = format.TypeKind(f.varint)
		case 2:
			if f.typ == protowire.BytesType {
				subs, err := packedVarints(f.bytes)
				if err != nil {
					return Type{}, err
				}
				t.Subtypes = append(t.Subtypes, subs...)
			} else {
				t.Subtypes = append(t.Subtypes, uint32(f.varint))
			}
		case 3:
			t.FieldNames = append(t.FieldNames, string(f.bytes))
		}
	}

	return t, nil
}

func decodeStripeInformation(b []byte) (StripeInformation, error) {
	var s StripeInformation

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return StripeInformation{}, err
		}
		b = rest

		switch f.num {
		case 1:
			s.Offset = f.varint
		case 2:
			s.IndexLength = f.varint
		case 3:
			s.DataLength = f.varint
		case 4:
			s.FooterLength = f.varint
		case 5:
			s.NumberOfRows = f.varint
		}
	}

	return s, nil
}

// Footer is the file's schema and stripe directory: the list of stripes in
// file order, the schema type tree, and the total row count.
type Footer struct {
	HeaderLength   uint64
	ContentLength  uint64
	Stripes        []StripeInformation
	Types          []Type
	NumberOfRows   uint64
	RowIndexStride uint32
}

// DecodeFooter parses the Footer message out of b.
func DecodeFooter(b []byte) (Footer, error) {
	var ft Footer

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return Footer{}, err
		}
		b = rest

		switch f.num {
		case 1:
			ft.HeaderLength = f.varint
		case 2:
			ft.ContentLength = f.varint
		case 3:
			si, err := decodeStripeInformation(f.bytes)
			if err != nil {
				return Footer{}, fmt.Errorf("%w: stripe %d: %v", errs.ErrInvalidProto, len(ft.Stripes), err)
			}
			ft.Stripes = append(ft.Stripes, si)
		case 4:
			ty, err := decodeType(f.bytes)
			if err != nil {
				return Footer{}, fmt.Errorf("%w: type %d: %v", errs.ErrInvalidProto, len(ft.Types), err)
			}
			ft.Types = append(ft.Types, ty)
		case 6:
			ft.NumberOfRows = f.varint
		case 8:
			ft.RowIndexStride = uint32(f.varint)
		}
	}

	return ft, nil
}
