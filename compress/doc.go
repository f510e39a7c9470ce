// Package compress implements the block-level decompression used by ORC
// streams.
//
// Every stream in a compressed ORC file is chopped into independently
// compressed blocks, each prefixed with a 3-byte little-endian header: bit 0
// says whether the block is stored verbatim ("original"), the remaining 23
// bits give the block's length in bytes. A [Decompressor] walks a stream's
// raw bytes one block at a time, handing back a view onto the decompressed
// (or, for an original block, untouched) bytes for that block only. Nothing
// upstream of a block boundary needs to be buffered at once.
//
// Only [format.CompressionNone] and [format.CompressionZlib] are actually
// decoded; the others are a recognized but unsupported part of the format
// and produce [errs.ErrUnsupportedCompression].
package compress
