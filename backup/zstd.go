package backup

// ZstdCodec compresses snapshots with Zstandard, the best ratio of the
// provided codecs. The implementation is selected at build time: builds
// with cgo use the gozstd bindings, pure Go builds fall back to the
// klauspost encoder. Both emit standard zstd frames.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// zstdCompressionLevel balances ratio against the one-shot cost of a
// snapshot write.
const zstdCompressionLevel = 3

// NewZstdCodec creates a Zstandard snapshot codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Ext returns the snapshot filename suffix.
func (ZstdCodec) Ext() string { return ".bak.zst" }
