package backup

import (
	"fmt"
	"io"
	"strings"
)

type Compression uint8

const (
	CompressionNone Compression = 0x1 // CompressionNone copies the file as-is.
	CompressionGzip Compression = 0x2 // CompressionGzip wraps the copy in a gzip stream.
	CompressionZstd Compression = 0x3 // CompressionZstd wraps the copy in a Zstandard stream.
	CompressionLZ4  Compression = 0x4 // CompressionLZ4 wraps the copy in an LZ4 frame.
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompression maps a flag or config value to a Compression.
// Recognized values are none, gzip, zstd, and lz4, along with the matching
// file extensions gz, zst, and an empty string for none.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown backup compression: %q", s)
	}
}

// Codec layers a compression stream over a snapshot destination.
type Codec interface {
	// Ext returns the filename suffix appended to the source path.
	Ext() string

	// WrapWriter layers the codec's compression over w. Closing the
	// returned writer finishes the compressed stream without closing w.
	WrapWriter(w io.Writer) (io.WriteCloser, error)
}

// NewCodec creates the Codec for the specified compression type.
func NewCodec(c Compression) (Codec, error) {
	switch c {
	case CompressionNone:
		return NewNoOpCodec(), nil
	case CompressionGzip:
		return NewGzipCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unsupported backup compression: %s", c)
	}
}
