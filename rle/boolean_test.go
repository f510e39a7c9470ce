package rle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainBools(t *testing.T, d *BoolDecoder) []bool {
	t.Helper()

	var out []bool
	for {
		v, ok, err := d.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

func TestBoolDecoder_Literals(t *testing.T) {
	in := []byte{0xFE, 0b01000100, 0b01000101}
	d := NewBoolDecoder(bytes.NewReader(in), 16)

	want := []bool{
		false, true, false, false, false, true, false, false,
		false, true, false, false, false, true, false, true,
	}
	assert.Equal(t, want, drainBools(t, d))
}

func TestBoolDecoder_SingleLiteralByte(t *testing.T) {
	in := []byte{0xFF, 0x80}
	d := NewBoolDecoder(bytes.NewReader(in), 8)

	want := []bool{true, false, false, false, false, false, false, false}
	assert.Equal(t, want, drainBools(t, d))
}

func TestBoolDecoder_RepeatRunSpansMultipleBytes(t *testing.T) {
	// header 0x02 -> count 5, value 0xFF: 5 repeated bytes of all-true
	// bits, capped to the first 12 of the 40 bits they'd produce.
	in := []byte{0x02, 0xFF}
	d := NewBoolDecoder(bytes.NewReader(in), 12)

	got := drainBools(t, d)
	require.Len(t, got, 12)
	for _, v := range got {
		assert.True(t, v)
	}
}

func TestBoolDecoder_LiteralTooLarge(t *testing.T) {
	in := []byte{0xFD, 0x01} // header says 3 literal bytes, only 1 present
	d := NewBoolDecoder(bytes.NewReader(in), 24)

	_, _, err := d.Next()
	require.Error(t, err)
}
