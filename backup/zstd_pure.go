//go:build !cgo

package backup

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// WrapWriter layers Zstandard compression over w using the pure Go
// encoder.
func (ZstdCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdCompressionLevel)))
	if err != nil {
		return nil, err
	}

	return enc, nil
}
