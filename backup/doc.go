// Package backup snapshots a database file before the backfill writes to
// it.
//
// A snapshot is a byte-for-byte copy of the file placed next to it with a
// .bak suffix, optionally compressed. MacDive databases compress well
// (they are mostly text and zeroed pages), so a compressed snapshot is
// usually a fraction of the original size at negligible cost for a file
// written once per run.
//
// # Codecs
//
// The Codec interface layers a compression stream over the destination
// writer:
//
//	type Codec interface {
//	    Ext() string
//	    WrapWriter(w io.Writer) (io.WriteCloser, error)
//	}
//
// Four codecs are provided, selected by the Compression enum:
//
//	CompressionNone  plain copy            <db>.bak
//	CompressionGzip  gzip                  <db>.bak.gz
//	CompressionZstd  Zstandard             <db>.bak.zst
//	CompressionLZ4   LZ4 frame             <db>.bak.lz4
//
// All outputs are standard formats recoverable with stock command-line
// tools, so a snapshot is useful even where this module is not installed.
// Builds with cgo use the gozstd bindings for Zstandard; pure Go builds
// fall back to the klauspost encoder.
package backup
