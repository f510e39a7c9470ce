package orcproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildColumnStatistics(numValues uint64, hasNull bool) []byte {
	var b []byte
	b = appendVarintField(b, 1, numValues)
	if hasNull {
		b = appendVarintField(b, 10, 1)
	}
	return b
}

func TestDecodeMetadata(t *testing.T) {
	stripe0 := appendBytesField(nil, 1, buildColumnStatistics(1000, false))
	stripe0 = appendBytesField(stripe0, 1, buildColumnStatistics(990, true))

	b := appendBytesField(nil, 1, stripe0)

	md, err := DecodeMetadata(b)
	require.NoError(t, err)

	require.Len(t, md.StripeStats, 1)
	require.Len(t, md.StripeStats[0].ColStats, 2)
	assert.Equal(t, ColumnStatistics{NumberOfValues: 1000}, md.StripeStats[0].ColStats[0])
	assert.Equal(t, ColumnStatistics{NumberOfValues: 990, HasNull: true}, md.StripeStats[0].ColStats[1])
}
