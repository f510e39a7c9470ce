package rle

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbeam/orc/endian"
	"github.com/colbeam/orc/errs"
)

func TestFloat32Decoder(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	var buf []byte
	buf = engine.AppendUint32(buf, math.Float32bits(1.5))
	buf = engine.AppendUint32(buf, math.Float32bits(-2.25))

	d := NewFloat32Decoder(bytes.NewReader(buf), 2)

	v, ok, err := d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, float32(1.5), v)

	v, ok, err = d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, float32(-2.25), v)

	_, ok, err = d.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFloat64Decoder_ShortRead(t *testing.T) {
	d := NewFloat64Decoder(bytes.NewReader([]byte{0x01, 0x02, 0x03}), 1)

	_, _, err := d.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDecodeFloat))
}
