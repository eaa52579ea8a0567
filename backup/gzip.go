package backup

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec compresses snapshots into a gzip stream, the most portable of
// the compressed options.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a gzip snapshot codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Ext returns the snapshot filename suffix.
func (GzipCodec) Ext() string { return ".bak.gz" }

// WrapWriter layers gzip compression over w at the default level.
func (GzipCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
