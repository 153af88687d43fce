// Package format holds the wire constants of the envelope that can wrap a SCALE
// payload for storage or transport.
package format

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Envelope layout.
const (
	Magic0 = 'S'
	Magic1 = 'C'

	// Version is the only envelope version this package writes and reads.
	Version uint8 = 1

	// HeaderSize is the fixed prefix before the compact payload length:
	// magic (2), version (1), compression (1), checksum (8).
	HeaderSize = 12
)

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
