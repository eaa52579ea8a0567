package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/divetools/swiftgps/internal/pool"
)

// Snapshot copies the file at srcPath to srcPath plus the codec extension,
// compressed per c. An existing snapshot at that path is replaced; a
// failed snapshot is removed rather than left half-written.
//
// Returns the path of the snapshot file.
func Snapshot(srcPath string, c Compression) (string, error) {
	codec, err := NewCodec(c)
	if err != nil {
		return "", err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open snapshot source: %w", err)
	}
	defer src.Close()

	dstPath := srcPath + codec.Ext()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}

	err = copyThrough(codec, dst, src)

	if cerr := dst.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("write snapshot %s: %w", dstPath, err)
	}

	return dstPath, nil
}

func copyThrough(codec Codec, dst io.Writer, src io.Reader) error {
	w, err := codec.WrapWriter(dst)
	if err != nil {
		return err
	}

	buf, cleanup := pool.GetCopyBuffer()
	defer cleanup()

	if _, err := io.CopyBuffer(w, src, buf); err != nil {
		w.Close()

		return err
	}

	return w.Close()
}
