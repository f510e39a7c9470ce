package orc

import (
	"io"

	"github.com/colbeam/orc/filemeta"
	"github.com/colbeam/orc/internal/options"
	"github.com/colbeam/orc/orcproto"
)

// Config holds Open's configurable knobs.
type Config struct {
	trailingReadSize int
}

// Option configures Open.
type Option = options.Option[*Config]

// WithTrailingReadSize overrides the size of the initial speculative tail
// read used to locate the postscript, footer and metadata regions.
func WithTrailingReadSize(n int) Option {
	return options.NoError(func(c *Config) { c.trailingReadSize = n })
}

// Reader is a long-lived handle on one ORC file's metadata, reused across
// every stripe read against source.
type Reader struct {
	file *filemeta.File
}

// Open reads source's postscript, footer and metadata. The returned
// Reader can then locate any stripe's footer and column regions on demand.
func Open(source io.ReadSeeker, opts ...Option) (*Reader, error) {
	cfg := &Config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var fopts []filemeta.Option
	if cfg.trailingReadSize > 0 {
		fopts = append(fopts, filemeta.WithTrailingReadSize(cfg.trailingReadSize))
	}

	f, err := filemeta.ReadFile(source, fopts...)
	if err != nil {
		return nil, err
	}

	return &Reader{file: f}, nil
}

// NumStripes reports how many stripes the file's footer lists.
func (r *Reader) NumStripes() int { return r.file.NumStripes() }

// NumRows reports the file's total row count.
func (r *Reader) NumRows() uint64 { return r.file.Footer().NumberOfRows }

// Types returns the file's flat, parent-first schema type array.
func (r *Reader) Types() []orcproto.Type { return r.file.Types() }

// Stripe reads and returns the idx'th stripe's footer, ready for column
// reads.
func (r *Reader) Stripe(idx int) (*Stripe, error) {
	sf, err := r.file.StripeFooter(idx)
	if err != nil {
		return nil, err
	}

	return &Stripe{
		file:   r.file,
		idx:    idx,
		footer: sf,
		info:   r.file.Footer().Stripes[idx],
	}, nil
}
