package envelope

import (
	"errors"
	"fmt"

	"github.com/arloliu/scale/codec"
	"github.com/arloliu/scale/endian"
	"github.com/arloliu/scale/format"
)

var (
	ErrCorrupt            = errors.New("envelope: corrupt header")
	ErrUnsupportedVersion = errors.New("envelope: unsupported version")
	ErrChecksumMismatch   = errors.New("envelope: checksum mismatch")
	ErrPayloadTooLarge    = errors.New("envelope: payload too large")
)

// Header is the decoded prefix of an envelope.
type Header struct {
	// Version is the envelope format version.
	Version uint8 // byte offset 2
	// Compression names the codec applied to the payload.
	Compression format.CompressionType // byte offset 3
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 4-11
	// Length is the uncompressed payload length, compact encoded from offset 12.
	Length uint64
}

// Size returns the number of bytes the header occupies on the wire.
func (h Header) Size() int {
	return format.HeaderSize + codec.CompactSize(h.Length)
}

// AppendTo appends the wire form of the header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = append(dst, format.Magic0, format.Magic1, h.Version, byte(h.Compression))
	dst = engine.AppendUint64(dst, h.Checksum)

	return codec.AppendCompact(dst, h.Length)
}

// Parse parses the header at the start of data.
//
// Parameters:
//   - data: Byte slice starting with an envelope
//
// Returns:
//   - int: Number of header bytes consumed
//   - error: ErrCorrupt, ErrUnsupportedVersion or an invalid compression type
func (h *Header) Parse(data []byte) (int, error) {
	if len(data) < format.HeaderSize+1 {
		return 0, fmt.Errorf("%w: %d bytes is shorter than the minimum header", ErrCorrupt, len(data))
	}

	if data[0] != format.Magic0 || data[1] != format.Magic1 {
		return 0, fmt.Errorf("%w: bad magic %q", ErrCorrupt, data[0:2])
	}

	h.Version = data[2]
	if h.Version != format.Version {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	h.Compression = format.CompressionType(data[3])
	if !h.Compression.Valid() {
		return 0, fmt.Errorf("%w: unknown compression type %d", ErrCorrupt, data[3])
	}

	h.Checksum = endian.GetLittleEndianEngine().Uint64(data[4:12])

	length, n, err := codec.DecodeCompactBytes(data[format.HeaderSize:])
	if err != nil {
		return 0, fmt.Errorf("%w: payload length: %w", ErrCorrupt, err)
	}
	h.Length = length

	return format.HeaderSize + n, nil
}

// ParseHeader parses the header at the start of data, leaving the body untouched.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if _, err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
