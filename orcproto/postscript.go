package orcproto

import (
	"fmt"

	"github.com/colbeam/orc/errs"
	"github.com/colbeam/orc/format"
)

// PostScript is the file's trailing region: always uncompressed, it names
// the compression codec and gives the byte lengths of the Footer and
// Metadata regions that sit just before it.
type PostScript struct {
	FooterLength           uint64
	Compression            format.CompressionKind
	CompressionBlockSize   uint64
	Version                []uint32
	MetadataLength         uint64
	WriterVersion          uint64
	StripeStatisticsLength uint64
	Magic                  string
}

// DecodePostScript parses the PostScript message out of b.
func DecodePostScript(b []byte) (PostScript, error) {
	var ps PostScript

	for len(b) > 0 {
		f, rest, err := nextField(b)
		if err != nil {
			return PostScript{}, err
		}
		b = rest

		switch f.num {
		case 1:
			ps.FooterLength = f.varint
		case 2:
			ps.Compression = format.CompressionKind(f.varint)
		case 3:
			ps.CompressionBlockSize = f.varint
		case 4:
			ps.Version = append(ps.Version, uint32(f.varint))
		case 5:
			ps.MetadataLength = f.varint
		case 6:
			ps.WriterVersion = f.varint
		case 7:
			ps.StripeStatisticsLength = f.varint
		case 8000:
			ps.Magic = string(f.bytes)
		}
	}

	if ps.Magic != "" && ps.Magic != "ORC" {
		return PostScript{}, fmt.Errorf("%w: postscript magic %q", errs.ErrOutOfSpec, ps.Magic)
	}

	return ps, nil
}
