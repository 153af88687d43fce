package compress

// ZstdCompressor provides Zstandard compression for sealed payloads.
//
// It gives the best ratio of the built-in codecs and suits archived or
// bandwidth-bound payloads. The implementation is selected at build time, see the
// package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
