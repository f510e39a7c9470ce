package filemeta

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/colbeam/orc/format"
)

func varintField(num protowire.Number, v uint64) []byte {
	b := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func bytesField(num protowire.Number, v []byte) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// buildOrcFile assembles a minimal, uncompressed synthetic ORC tail: one
// stripe, one Int column, no streams (enough to exercise ReadFile's
// postscript/footer/metadata plumbing without a full stripe body).
func buildOrcFile(t *testing.T) []byte {
	t.Helper()

	stripeInfo := append(varintField(1, 0), varintField(2, 0)...)
	stripeInfo = append(stripeInfo, varintField(3, 20)...)
	stripeInfo = append(stripeInfo, varintField(4, 15)...)
	stripeInfo = append(stripeInfo, varintField(5, 5)...)

	rootType := varintField(1, uint64(format.TypeStruct))
	intType := varintField(1, uint64(format.TypeInt))

	var footer []byte
	footer = append(footer, bytesField(3, stripeInfo)...)
	footer = append(footer, bytesField(4, rootType)...)
	footer = append(footer, bytesField(4, intType)...)
	footer = append(footer, varintField(6, 5)...)

	metadata := bytesField(1, nil) // one (empty) StripeStatistics

	var ps []byte
	ps = append(ps, varintField(1, uint64(len(footer)))...)
	ps = append(ps, varintField(2, uint64(format.CompressionNone))...)
	ps = append(ps, varintField(5, uint64(len(metadata)))...)
	ps = append(ps, bytesField(8000, []byte("ORC"))...)

	var buf []byte
	buf = append(buf, metadata...)
	buf = append(buf, footer...)
	buf = append(buf, ps...)
	buf = append(buf, byte(len(ps)))

	return buf
}

func TestReadFile(t *testing.T) {
	raw := buildOrcFile(t)

	f, err := ReadFile(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, format.CompressionNone, f.PostScript().Compression)
	assert.Equal(t, "ORC", f.PostScript().Magic)
	assert.Equal(t, uint64(5), f.Footer().NumberOfRows)
	require.Len(t, f.Footer().Stripes, 1)
	assert.Equal(t, uint64(5), f.Footer().Stripes[0].NumberOfRows)
	require.Len(t, f.Metadata().StripeStats, 1)
	assert.Equal(t, 1, f.NumStripes())

	require.Len(t, f.Types(), 2)
	assert.Equal(t, format.TypeStruct, f.Types()[0].Kind)
	assert.Equal(t, format.TypeInt, f.Types()[1].Kind)
}

func TestReadFile_SmallTrailingRead(t *testing.T) {
	raw := buildOrcFile(t)

	f, err := ReadFile(bytes.NewReader(raw), WithTrailingReadSize(len(raw)-5))
	require.NoError(t, err)

	assert.Equal(t, uint64(5), f.Footer().NumberOfRows)
}

func TestReadFile_BadPostscriptLength(t *testing.T) {
	_, err := ReadFile(bytes.NewReader([]byte{0x01, 0x02, 0x00}))
	require.Error(t, err)
}

func TestFile_StripeFooterCaching(t *testing.T) {
	// A stripe footer region of length 0 decodes to an empty StripeFooter;
	// this exercises the read + cache path without needing real stream bytes.
	raw := buildOrcFile(t)
	f, err := ReadFile(bytes.NewReader(raw))
	require.NoError(t, err)

	// Patch the only stripe's footer length to 0 so StripeFooter's bulk
	// read is a zero-length no-op against the synthetic file.
	f.footer.Stripes[0].FooterLength = 0
	f.footer.Stripes[0].Offset = 0
	f.footer.Stripes[0].IndexLength = 0
	f.footer.Stripes[0].DataLength = 0

	sf, err := f.StripeFooter(0)
	require.NoError(t, err)
	assert.Empty(t, sf.Streams)

	sf2, err := f.StripeFooter(0)
	require.NoError(t, err)
	assert.Equal(t, sf, sf2)
}

func TestFile_StripeFooter_OutOfRange(t *testing.T) {
	raw := buildOrcFile(t)
	f, err := ReadFile(bytes.NewReader(raw))
	require.NoError(t, err)

	_, err = f.StripeFooter(5)
	require.Error(t, err)
}
