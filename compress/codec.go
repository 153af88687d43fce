package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/scale/format"
)

// ErrSizeMismatch is returned when a body does not decompress to the expected length.
var ErrSizeMismatch = errors.New("decompressed size mismatch")

// Compressor compresses an encoded payload.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses data, which must expand to exactly size bytes.
	//
	// Error conditions:
	//   - ErrSizeMismatch if the body declares or yields a different length
	//   - the algorithm's own error if data is corrupted
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func checkSize(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, got, want)
	}

	return nil
}
