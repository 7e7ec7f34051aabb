package compress

// ZstdCompressor provides Zstandard compression for spooled payloads.
//
// The default build uses the pure Go klauspost/compress implementation.
// Building with both cgo and the gozstd tag switches to libzstd through
// valyala/gozstd. Both produce standard zstd frames and can read each other's
// output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
