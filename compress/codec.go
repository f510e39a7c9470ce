package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/format"
	"github.com/colbeam/orc/internal/pool"
)

// headerLen is the size, in bytes, of an ORC compression block header.
const headerLen = 3

// decodeHeader parses a 3-byte compression block header: a little-endian
// 24-bit integer whose low bit is the "original" (uncompressed) flag and
// whose remaining 23 bits give the block's body length in bytes.
func decodeHeader(b []byte) (isOriginal bool, length int, err error) {
	if len(b) < headerLen {
		return false, 0, fmt.Errorf("%w: compression block header truncated", errs.ErrOutOfSpec)
	}

	raw := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	isOriginal = raw&1 == 1
	length = int(raw >> 1)

	return isOriginal, length, nil
}

// Decompressor walks a raw (possibly compressed) ORC stream one compression
// block at a time.
//
// It offers two ways to consume the blocks: the block-iterator view
// (Advance/Block), which hands back a borrowed slice per block so callers
// that want to inspect block boundaries can do so, and the reader view
// (Reader), which concatenates blocks behind a plain io.Reader for callers
// that just want the logical byte stream.
//
// A Zlib-compressed Decompressor reuses a single flate.Resetter-capable
// reader across every block instead of allocating one per block; the
// scratch buffer it decompresses into is supplied by the caller and
// recoverable via Scratch so it can be handed back to a pool.ByteBufferPool
// once the Decompressor is no longer needed.
type Decompressor struct {
	stream  []byte
	kind    format.CompressionKind
	scratch *pool.ByteBuffer
	current []byte
	flate   io.ReadCloser
	err     error
}

// NewDecompressor returns a Decompressor over stream, compressed with kind,
// using scratch as the buffer each Zlib block is inflated into.
func NewDecompressor(stream []byte, kind format.CompressionKind, scratch *pool.ByteBuffer) *Decompressor {
	return &Decompressor{
		stream:  stream,
		kind:    kind,
		scratch: scratch,
	}
}

// Advance consumes the next compression block's header and body, making its
// bytes available via Block. It returns false once the stream is exhausted,
// and a non-nil error (sticky on every subsequent call) if the stream is
// malformed or uses a compression kind this package cannot decode.
func (d *Decompressor) Advance() (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if len(d.stream) == 0 {
		return false, nil
	}

	switch d.kind {
	case format.CompressionNone:
		d.current = d.stream
		d.stream = nil

		return true, nil

	case format.CompressionZlib:
		isOriginal, length, err := decodeHeader(d.stream)
		if err != nil {
			d.err = err
			return false, err
		}

		if len(d.stream) < headerLen+length {
			d.err = fmt.Errorf("%w: compression block body truncated", errs.ErrOutOfSpec)
			return false, d.err
		}

		body := d.stream[headerLen : headerLen+length]
		d.stream = d.stream[headerLen+length:]

		if isOriginal {
			d.current = body
			return true, nil
		}

		if err := d.inflate(body); err != nil {
			d.err = err
			return false, err
		}

		return true, nil

	default:
		d.err = fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, d.kind)
		return false, d.err
	}
}

// inflate DEFLATE-decompresses body into d.scratch, reusing the flate
// reader across calls via flate.Resetter instead of allocating a fresh one
// per block.
func (d *Decompressor) inflate(body []byte) error {
	if d.flate == nil {
		d.flate = flate.NewReader(bytes.NewReader(body))
	} else if err := d.flate.(flate.Resetter).Reset(bytes.NewReader(body), nil); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDecompression, err)
	}

	d.scratch.Reset()
	if _, err := io.Copy(d.scratch, d.flate); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDecompression, err)
	}

	d.current = d.scratch.Bytes()

	return nil
}

// Block returns the bytes of the block made current by the last successful
// Advance call. It is only valid between a true-returning Advance and the
// next one.
func (d *Decompressor) Block() []byte {
	return d.current
}

// Scratch releases the scratch buffer back to the caller, analogous to
// Rust's into_inner: once a Decompressor is done being read, its buffer can
// be returned to a pool.ByteBufferPool for reuse by the next column.
func (d *Decompressor) Scratch() *pool.ByteBuffer {
	return d.scratch
}

// Close releases the internal flate reader, if one was allocated. It does
// not touch the scratch buffer; call Scratch first if it needs to be
// returned to a pool.
func (d *Decompressor) Close() error {
	if d.flate == nil {
		return nil
	}

	return d.flate.Close()
}

// Reader returns a pull-based io.Reader over the Decompressor's logical
// byte stream: reads transparently advance to the next compression block
// as each one is exhausted.
func (d *Decompressor) Reader() io.Reader {
	return &blockReader{d: d}
}

type blockReader struct {
	d   *Decompressor
	pos int
}

func (r *blockReader) Read(p []byte) (int, error) {
	for r.pos >= len(r.d.current) {
		ok, err := r.d.Advance()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
		r.pos = 0
	}

	n := copy(p, r.d.current[r.pos:])
	r.pos += n

	return n, nil
}
