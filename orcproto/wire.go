package orcproto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/colbeam/orc/errs"
)

// field is one decoded (tag, value) pair off a message's wire bytes.
// Exactly one of varint/bytes is meaningful, selected by typ.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

// nextField consumes one field off b, returning it and the bytes left
// after it. A repeated field shows up as the same num across multiple
// nextField calls; callers append as they go.
func nextField(b []byte) (f field, rest []byte, err error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return field{}, nil, fmt.Errorf("%w: tag: %v", errs.ErrInvalidProto, protowire.ParseError(n))
	}
	b = b[n:]

	switch typ {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return field{}, nil, fmt.Errorf("%w: varint field %d: %v", errs.ErrInvalidProto, num, protowire.ParseError(n))
		}
		return field{num: num, typ: typ, varint: v}, b[n:], nil

	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return field{}, nil, fmt.Errorf("%w: fixed32 field %d: %v", errs.ErrInvalidProto, num, protowire.ParseError(n))
		}
		return field{num: num, typ: typ, varint: uint64(v)}, b[n:], nil

	case protowire.Fixed64Type:
		v, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			return field{}, nil, fmt.Errorf("%w: fixed64 field %d: %v", errs.ErrInvalidProto, num, protowire.ParseError(n))
		}
		return field{num: num, typ: typ, varint: v}, b[n:], nil

	case protowire.BytesType:
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return field{}, nil, fmt.Errorf("%w: bytes field %d: %v", errs.ErrInvalidProto, num, protowire.ParseError(n))
		}
		return field{num: num, typ: typ, bytes: v}, b[n:], nil

	default:
		n := protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return field{}, nil, fmt.Errorf("%w: field %d: %v", errs.ErrInvalidProto, num, protowire.ParseError(n))
		}
		return field{num: num, typ: typ}, b[n:], nil
	}
}

// packedVarints decodes a length-delimited field holding back-to-back
// varints, the wire encoding protobuf uses for a packed repeated field
// (ORC's Type.subtypes).
func packedVarints(b []byte) ([]uint32, error) {
	var out []uint32
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: packed varint: %v", errs.ErrInvalidProto, protowire.ParseError(n))
		}
		out = append(out, uint32(v))
		b = b[n:]
	}

	return out, nil
}
