package compress

// ZstdCompressor compresses snapshot payloads with Zstandard, trading codec
// speed for the best ratio of the supported algorithms. A good default for
// snapshots that are written once and archived.
//
// The Compress/Decompress method implementations are selected at build time:
// the pure-Go klauspost path by default, with a cgo gozstd variant available
// behind a build tag (see zstd_pure.go and zstd_cgo.go).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
