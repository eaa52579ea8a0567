package backup

import "io"

// NoOpCodec copies the file without compression. The snapshot is a working
// database that MacDive can open directly, which is the safest default.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a plain-copy snapshot codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Ext returns the snapshot filename suffix.
func (NoOpCodec) Ext() string { return ".bak" }

// WrapWriter returns w behind a no-op closer; bytes pass through
// unchanged.
func (NoOpCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
