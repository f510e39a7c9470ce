package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	bytes := bb.Bytes()

	assert.Equal(t, []byte("hello"), bytes)
	assert.True(t, &bb.B[0] == &bytes[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.B)
}

func TestByteBuffer_Write_Multiple(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)

	n1, err1 := bb.Write([]byte("hello"))
	require.NoError(t, err1)
	assert.Equal(t, 5, n1)

	n2, err2 := bb.Write([]byte(" world"))
	require.NoError(t, err2)
	assert.Equal(t, 6, n2)

	assert.Equal(t, []byte("hello world"), bb.B)
}

// TestByteBuffer_Write_GrowsLikeIOCopy mirrors how a Decompressor actually
// fills a scratch buffer: io.Copy driving repeated Write calls past the
// buffer's starting capacity.
func TestByteBuffer_Write_GrowsLikeIOCopy(t *testing.T) {
	bb := NewByteBuffer(8)

	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}

	n, err := bb.Write(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, data, bb.B)
}

func TestGetStreamBuffer(t *testing.T) {
	bb := GetStreamBuffer()

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, cap(bb.B), StreamBufferDefaultSize, "pooled buffer should have at least default capacity")
}

func TestPutStreamBuffer_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutStreamBuffer(nil)
	})
}

func TestPool_ResetsClearsData(t *testing.T) {
	bb := GetStreamBuffer()
	bb.B = append(bb.B, []byte("sensitive data")...)

	PutStreamBuffer(bb)

	assert.Equal(t, 0, len(bb.B), "PutStreamBuffer should reset the buffer")
}

func TestPool_MultipleGetsAndPuts(t *testing.T) {
	buffers := make([]*ByteBuffer, 10)

	for i := range buffers {
		buffers[i] = GetStreamBuffer()
		require.NotNil(t, buffers[i])
		_, _ = buffers[i].Write([]byte("data"))
	}

	for _, bb := range buffers {
		PutStreamBuffer(bb)
	}

	for i := 0; i < 10; i++ {
		bb := GetStreamBuffer()
		assert.Equal(t, 0, len(bb.B), "each buffer should be reset")
		PutStreamBuffer(bb)
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numIterations = 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				bb := GetStreamBuffer()
				_, _ = bb.Write([]byte("data"))
				assert.Equal(t, 4, len(bb.B))
				PutStreamBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

func TestNewByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(8192, 65536)

	require.NotNil(t, p)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 8192, "buffer should have at least default size")

	p.Put(bb)
}

func TestByteBufferPool_CustomSizes(t *testing.T) {
	tests := []struct {
		name         string
		defaultSize  int
		maxThreshold int
	}{
		{"Small pool", 1024, 4096},
		{"Medium pool", 16384, 131072},
		{"Large pool", 1048576, 8388608},
		{"No threshold", 8192, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewByteBufferPool(tt.defaultSize, tt.maxThreshold)
			bb := p.Get()
			assert.GreaterOrEqual(t, cap(bb.B), tt.defaultSize)
			p.Put(bb)
		})
	}
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.B = make([]byte, 0, 10000) // simulate a buffer that grew past the threshold

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096*2, "should not reuse buffer larger than threshold")
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	p := NewByteBufferPool(1024, 0) // 0 means no limit

	bb := p.Get()
	bb.B = make([]byte, 0, 1024*1024) // 1MB, well above any realistic threshold

	p.Put(bb)

	bb2 := p.Get()
	assert.NotNil(t, bb2)
}

func TestGetStripeBuffer(t *testing.T) {
	bb := GetStripeBuffer()

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "stripe buffer should be empty")
	assert.GreaterOrEqual(t, cap(bb.B), StripeBufferDefaultSize, "stripe buffer should have at least default size")
}

func TestPutStripeBuffer(t *testing.T) {
	bb := GetStripeBuffer()
	_, _ = bb.Write([]byte("test data"))

	assert.NotPanics(t, func() {
		PutStripeBuffer(bb)
	})

	assert.Equal(t, 0, len(bb.B), "PutStripeBuffer should reset the buffer")
}

func TestDefaultPools_Independence(t *testing.T) {
	streamBuf := GetStreamBuffer()
	streamCap := cap(streamBuf.B)

	stripeBuf := GetStripeBuffer()
	stripeCap := cap(stripeBuf.B)

	assert.NotEqual(t, streamCap, stripeCap, "stream and stripe buffers should have different default sizes")
	assert.GreaterOrEqual(t, streamCap, StreamBufferDefaultSize, "stream buffer should be >= 16KB")
	assert.GreaterOrEqual(t, stripeCap, StripeBufferDefaultSize, "stripe buffer should be >= 1MB")

	PutStreamBuffer(streamBuf)
	PutStripeBuffer(stripeBuf)
}

func TestByteBuffer_ResetAndReuse(t *testing.T) {
	bb := GetStreamBuffer()
	defer PutStreamBuffer(bb)

	_, _ = bb.Write([]byte("first"))
	assert.Equal(t, 5, len(bb.B))

	bb.Reset()
	assert.Equal(t, 0, len(bb.B))

	_, _ = bb.Write([]byte("second"))
	assert.Equal(t, []byte("second"), bb.B)
}
