package compress

// ZstdCompressor compresses payloads with Zstandard at the default level.
//
// The implementation is chosen at build time, see zstd_pure.go and
// zstd_cgo.go.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
