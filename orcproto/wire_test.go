package orcproto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// appendVarintField appends a (tag, varint) pair in protobuf wire format.
func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	b = protowire.AppendVarint(b, v)
	return b
}

// appendBytesField appends a (tag, length-delimited) pair.
func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendBytes(b, v)
	return b
}

// appendStringField is appendBytesField for a string payload.
func appendStringField(b []byte, num protowire.Number, s string) []byte {
	return appendBytesField(b, num, []byte(s))
}

// appendPackedVarints appends a length-delimited field holding a run of
// varints back to back (protobuf's packed-repeated encoding).
func appendPackedVarints(b []byte, num protowire.Number, vs []uint64) []byte {
	var payload []byte
	for _, v := range vs {
		payload = protowire.AppendVarint(payload, v)
	}
	return appendBytesField(b, num, payload)
}
