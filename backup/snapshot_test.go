package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, payload []byte) string {
	t.Helper()

	srcPath := filepath.Join(t.TempDir(), "MacDive.sqlite")
	require.NoError(t, os.WriteFile(srcPath, payload, 0o644))

	return srcPath
}

func TestSnapshot_PlainCopy(t *testing.T) {
	payload := bytes.Repeat([]byte{0x13, 0x37, 0x00, 0x00}, 4096)
	srcPath := writeSource(t, payload)

	path, err := Snapshot(srcPath, CompressionNone)
	require.NoError(t, err)
	require.Equal(t, srcPath+".bak", path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	// The source is untouched.
	src, err := os.ReadFile(srcPath)
	require.NoError(t, err)
	require.Equal(t, payload, src)
}

func TestSnapshot_Gzip(t *testing.T) {
	payload := bytes.Repeat([]byte("ZDIVE row data "), 2048)
	srcPath := writeSource(t, payload)

	path, err := Snapshot(srcPath, CompressionGzip)
	require.NoError(t, err)
	require.Equal(t, srcPath+".bak.gz", path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)

	var restored bytes.Buffer
	_, err = restored.ReadFrom(zr)
	require.NoError(t, err)
	require.Equal(t, payload, restored.Bytes())
}

func TestSnapshot_ReplacesStaleSnapshot(t *testing.T) {
	payload := []byte("current database contents")
	srcPath := writeSource(t, payload)
	require.NoError(t, os.WriteFile(srcPath+".bak", []byte("stale"), 0o644))

	path, err := Snapshot(srcPath, CompressionNone)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestSnapshot_MissingSource(t *testing.T) {
	_, err := Snapshot(filepath.Join(t.TempDir(), "absent.sqlite"), CompressionNone)
	require.Error(t, err)
}

func TestSnapshot_InvalidCompression(t *testing.T) {
	srcPath := writeSource(t, []byte("x"))

	_, err := Snapshot(srcPath, Compression(0x7F))
	require.Error(t, err)
}
