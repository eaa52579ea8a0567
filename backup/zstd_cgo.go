//go:build cgo

package backup

import (
	"io"

	"github.com/valyala/gozstd"
)

// WrapWriter layers Zstandard compression over w using the gozstd
// bindings.
func (ZstdCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return gozstdWriteCloser{gozstd.NewWriterLevel(w, zstdCompressionLevel)}, nil
}

type gozstdWriteCloser struct {
	*gozstd.Writer
}

// Close finishes the frame and releases the writer's C buffers.
func (w gozstdWriteCloser) Close() error {
	err := w.Writer.Close()
	w.Writer.Release()

	return err
}
