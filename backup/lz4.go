package backup

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec compresses snapshots into an LZ4 frame. Compression is lighter
// than Zstandard but nearly free, useful for very large dive libraries.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4 snapshot codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Ext returns the snapshot filename suffix.
func (LZ4Codec) Ext() string { return ".bak.lz4" }

// WrapWriter layers LZ4 frame compression over w.
func (LZ4Codec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
