package orc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/colbeam/orc/format"
	"github.com/colbeam/orc/internal/pool"
)

func varintField(num protowire.Number, v uint64) []byte {
	b := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func bytesField(num protowire.Number, v []byte) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// buildSyntheticFile assembles a one-stripe, two-column (struct root, int
// child) uncompressed ORC file: a single Short-Repeat RLE v2 run for the
// int column's Data stream, five rows, no Present stream (all valid).
func buildSyntheticFile(t *testing.T) []byte {
	t.Helper()

	dataBytes := []byte{0x0A, 0x27, 0x10} // Short-Repeat: raw 10000, count 5

	stream := append(varintField(1, uint64(format.StreamData)), varintField(2, 1)...)
	stream = append(stream, varintField(3, uint64(len(dataBytes)))...)

	colEncodingRoot := varintField(1, uint64(format.EncodingDirect))
	colEncodingInt := varintField(1, uint64(format.EncodingDirectV2))

	var stripeFooter []byte
	stripeFooter = append(stripeFooter, bytesField(1, stream)...)
	stripeFooter = append(stripeFooter, bytesField(2, colEncodingRoot)...)
	stripeFooter = append(stripeFooter, bytesField(2, colEncodingInt)...)

	stripeInfo := append(varintField(1, 0), varintField(2, 0)...)
	stripeInfo = append(stripeInfo, varintField(3, uint64(len(dataBytes)))...)
	stripeInfo = append(stripeInfo, varintField(4, uint64(len(stripeFooter)))...)
	stripeInfo = append(stripeInfo, varintField(5, 5)...)

	rootType := append(varintField(1, uint64(format.TypeStruct)), varintField(2, 1)...)
	intType := varintField(1, uint64(format.TypeInt))

	var footer []byte
	footer = append(footer, bytesField(3, stripeInfo)...)
	footer = append(footer, bytesField(4, rootType)...)
	footer = append(footer, bytesField(4, intType)...)
	footer = append(footer, varintField(6, 5)...)

	var metadata []byte

	var ps []byte
	ps = append(ps, varintField(1, uint64(len(footer)))...)
	ps = append(ps, varintField(2, uint64(format.CompressionNone))...)
	ps = append(ps, varintField(5, uint64(len(metadata)))...)
	ps = append(ps, bytesField(8000, []byte("ORC"))...)

	var buf []byte
	buf = append(buf, dataBytes...)
	buf = append(buf, stripeFooter...)
	buf = append(buf, metadata...)
	buf = append(buf, footer...)
	buf = append(buf, ps...)
	buf = append(buf, byte(len(ps)))

	return buf
}

func TestOpenAndReadStripe(t *testing.T) {
	raw := buildSyntheticFile(t)

	r, err := Open(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, 1, r.NumStripes())
	assert.Equal(t, uint64(5), r.NumRows())
	require.Len(t, r.Types(), 2)
	assert.Equal(t, format.TypeStruct, r.Types()[0].Kind)
	assert.Equal(t, format.TypeInt, r.Types()[1].Kind)

	stripe, err := r.Stripe(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), stripe.NumRows())

	scratch := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(scratch)

	validity, values, err := stripe.Int64s(1, scratch)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, true}, validity)
	assert.Equal(t, []int64{5000, 5000, 5000, 5000, 5000}, values)
}
