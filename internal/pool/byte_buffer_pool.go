package pool

import "sync"

// Default and maximum sizes for the two buffer tiers a Decompressor's caller
// picks from: stream buffers scratch one decompressed stream's worth of
// column bytes at a time (column/column.go's GetStream), stripe buffers are
// the inflate scratch filemeta uses while decompressing a stripe footer,
// file footer or metadata region.
const (
	StreamBufferDefaultSize  = 1024 * 16
	StreamBufferMaxThreshold = 1024 * 128
	StripeBufferDefaultSize  = 1024 * 1024
	StripeBufferMaxThreshold = 1024 * 1024 * 8
)

// ByteBuffer is a reusable byte slice wrapper. A Decompressor inflates one
// compression block into it at a time via Write, then hands the result back
// out through Bytes; Reset clears it for the next block without releasing
// the underlying array.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, retaining its backing array for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data to the buffer, satisfying io.Writer so a Decompressor
// can io.Copy a flate.Reader straight into it.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool pools ByteBuffers of one size tier, discarding any buffer
// that grew past maxThreshold instead of returning it to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a ByteBufferPool whose buffers start at
// defaultSize and are discarded on Put once they exceed maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	streamDefaultPool = NewByteBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)
	stripeDefaultPool = NewByteBufferPool(StripeBufferDefaultSize, StripeBufferMaxThreshold)
)

// GetStreamBuffer retrieves a ByteBuffer from the default stream pool.
func GetStreamBuffer() *ByteBuffer {
	return streamDefaultPool.Get()
}

// PutStreamBuffer returns a ByteBuffer to the default stream pool.
func PutStreamBuffer(bb *ByteBuffer) {
	streamDefaultPool.Put(bb)
}

// GetStripeBuffer retrieves a ByteBuffer from the default stripe pool.
func GetStripeBuffer() *ByteBuffer {
	return stripeDefaultPool.Get()
}

// PutStripeBuffer returns a ByteBuffer to the default stripe pool.
func PutStripeBuffer(bb *ByteBuffer) {
	stripeDefaultPool.Put(bb)
}
