// Package filemeta reads an ORC file's tail-first metadata — PostScript,
// Footer and Metadata — and locates each stripe's footer and column
// regions on demand.
package filemeta

import (
	"fmt"
	"io"

	"github.com/colbeam/orc/column"
	"github.com/colbeam/orc/compress"
	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/format"
	"github.com/colbeam/orc/internal/options"
	"github.com/colbeam/orc/internal/pool"
	"github.com/colbeam/orc/orcproto"
)

// trailingReadSize is how much of the file's tail is fetched in one read
// to cover the postscript, footer and metadata regions in the common case.
const trailingReadSize = 16 * 1024

// Config holds filemeta.ReadFile's configurable knobs.
type Config struct {
	trailingReadSize int64
}

// Option configures ReadFile.
type Option = options.Option[*Config]

// WithTrailingReadSize overrides the size of the initial speculative tail
// read (default 16KiB). Large footers or metadata regions beyond this size
// still work; ReadFile issues a second, exactly-sized read to cover them.
func WithTrailingReadSize(n int) Option {
	return options.NoError(func(c *Config) { c.trailingReadSize = int64(n) })
}

func defaultConfig() *Config {
	return &Config{trailingReadSize: trailingReadSize}
}

// File is the long-lived (PostScript, Footer, Metadata) triple for one ORC
// file, plus a stripe-footer cache keyed by stripe index.
type File struct {
	source      io.ReadSeeker
	postScript  orcproto.PostScript
	footer      orcproto.Footer
	metadata    orcproto.Metadata
	footerCache map[int]orcproto.StripeFooter
}

// PostScript returns the file's decoded postscript.
func (f *File) PostScript() orcproto.PostScript { return f.postScript }

// Footer returns the file's decoded footer.
func (f *File) Footer() orcproto.Footer { return f.footer }

// Metadata returns the file's decoded (statistics) metadata.
func (f *File) Metadata() orcproto.Metadata { return f.metadata }

// Types returns the file's flat, parent-first schema type array.
func (f *File) Types() []orcproto.Type { return f.footer.Types }

// NumStripes reports how many stripes the footer lists.
func (f *File) NumStripes() int { return len(f.footer.Stripes) }

// readAt fills buf from source starting at offset, preferring a single
// io.ReaderAt call (no seek round-trip) when source supports it.
func readAt(source io.ReadSeeker, buf []byte, offset int64) error {
	if ra, ok := source.(io.ReaderAt); ok {
		_, err := ra.ReadAt(buf, offset)
		return err
	}

	if _, err := source.Seek(offset, io.SeekStart); err != nil {
		return err
	}

	_, err := io.ReadFull(source, buf)

	return err
}

// ReadFile reads source's postscript, footer and metadata, per the
// tail-first ORC layout: the last byte gives the postscript length, the
// postscript names the compression kind and the footer/metadata region
// lengths immediately preceding it.
func ReadFile(source io.ReadSeeker, opts ...Option) (*File, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	size, err := source.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: seek to end: %v", errs.ErrOutOfSpec, err)
	}

	readSize := cfg.trailingReadSize
	if readSize > size {
		readSize = size
	}
	if readSize < 1 {
		return nil, fmt.Errorf("%w: empty file", errs.ErrOutOfSpec)
	}

	tail := make([]byte, readSize)
	if err := readAt(source, tail, size-readSize); err != nil {
		return nil, fmt.Errorf("%w: tail read: %v", errs.ErrOutOfSpec, err)
	}

	psLen := int(tail[len(tail)-1])
	if psLen <= 0 || psLen >= 256 {
		return nil, fmt.Errorf("%w: postscript length byte %d", errs.ErrOutOfSpec, psLen)
	}

	psStart := len(tail) - 1 - psLen
	if psStart < 0 {
		return nil, fmt.Errorf("%w: postscript longer than trailing read", errs.ErrOutOfSpec)
	}

	ps, err := orcproto.DecodePostScript(tail[psStart : len(tail)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: postscript: %v", errs.ErrInvalidProto, err)
	}

	need := int64(ps.FooterLength) + int64(ps.MetadataLength) + int64(psLen) + 1

	var region []byte
	if need <= int64(len(tail)) {
		region = tail[int64(len(tail))-need:]
	} else {
		region = make([]byte, need)
		if err := readAt(source, region, size-need); err != nil {
			return nil, fmt.Errorf("%w: footer/metadata read: %v", errs.ErrOutOfSpec, err)
		}
	}

	metadataStart := 0
	metadataEnd := int(ps.MetadataLength)
	footerStart := metadataEnd
	footerEnd := footerStart + int(ps.FooterLength)

	scratch := pool.GetStripeBuffer()
	defer pool.PutStripeBuffer(scratch)

	metadataBytes, err := decompressWhole(region[metadataStart:metadataEnd], ps.Compression, scratch)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata region: %v", errs.ErrDecompression, err)
	}
	md, err := orcproto.DecodeMetadata(metadataBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", errs.ErrInvalidProto, err)
	}

	footerBytes, err := decompressWhole(region[footerStart:footerEnd], ps.Compression, scratch)
	if err != nil {
		return nil, fmt.Errorf("%w: footer region: %v", errs.ErrDecompression, err)
	}
	ft, err := orcproto.DecodeFooter(footerBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: footer: %v", errs.ErrInvalidProto, err)
	}

	return &File{
		source:      source,
		postScript:  ps,
		footer:      ft,
		metadata:    md,
		footerCache: make(map[int]orcproto.StripeFooter),
	}, nil
}

// decompressWhole drains a Decompressor's reader view into a freshly
// allocated slice — used for the footer/metadata/stripe-footer regions,
// each of which is read once in full rather than pulled incrementally.
func decompressWhole(region []byte, kind format.CompressionKind, scratch *pool.ByteBuffer) ([]byte, error) {
	if kind == format.CompressionNone {
		out := make([]byte, len(region))
		copy(out, region)
		return out, nil
	}

	d := compress.NewDecompressor(region, kind, scratch)
	defer d.Close()

	var out []byte
	buf := make([]byte, 4096)
	r := d.Reader()
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// StripeFooter decodes (or returns from cache) the StripeFooter for the
// given stripe index. Exactly one read against source is issued on a
// cache miss.
func (f *File) StripeFooter(idx int) (orcproto.StripeFooter, error) {
	if idx < 0 || idx >= len(f.footer.Stripes) {
		return orcproto.StripeFooter{}, fmt.Errorf("%w: stripe %d", errs.ErrOutOfSpec, idx)
	}

	if cached, ok := f.footerCache[idx]; ok {
		return cached, nil
	}

	si := f.footer.Stripes[idx]
	footerStart := int64(si.Offset + si.IndexLength + si.DataLength)

	raw := make([]byte, si.FooterLength)
	if err := readAt(f.source, raw, footerStart); err != nil {
		return orcproto.StripeFooter{}, fmt.Errorf("%w: stripe %d footer read: %v", errs.ErrOutOfSpec, idx, err)
	}

	scratch := pool.GetStripeBuffer()
	defer pool.PutStripeBuffer(scratch)

	decoded, err := decompressWhole(raw, f.postScript.Compression, scratch)
	if err != nil {
		return orcproto.StripeFooter{}, fmt.Errorf("%w: stripe %d footer: %v", errs.ErrDecompression, idx, err)
	}

	sf, err := orcproto.DecodeStripeFooter(decoded)
	if err != nil {
		return orcproto.StripeFooter{}, fmt.Errorf("%w: stripe %d footer: %v", errs.ErrInvalidProto, idx, err)
	}

	f.footerCache[idx] = sf

	return sf, nil
}

// Column reads stripeIdx's data region (one bulk read against source) and
// constructs a column.Column over columnID's streams within it. sf is the
// stripe's already-decoded footer, typically from StripeFooter. Streams
// are handed back still compressed; decompression happens lazily through
// column.Column.GetStream.
func (f *File) Column(stripeIdx int, sf orcproto.StripeFooter, columnID int) (*column.Column, error) {
	if stripeIdx < 0 || stripeIdx >= len(f.footer.Stripes) {
		return nil, fmt.Errorf("%w: stripe %d", errs.ErrOutOfSpec, stripeIdx)
	}

	si := f.footer.Stripes[stripeIdx]
	dataStart := int64(si.Offset + si.IndexLength)

	raw := make([]byte, si.DataLength)
	if err := readAt(f.source, raw, dataStart); err != nil {
		return nil, fmt.Errorf("%w: stripe %d data read: %v", errs.ErrOutOfSpec, stripeIdx, err)
	}

	return column.New(raw, sf.Streams, sf.Columns, columnID, si.NumberOfRows, f.postScript.Compression)
}
