package codec

import (
	"math/bits"

	"github.com/arloliu/scale/errs"
	"golang.org/x/exp/constraints"
)

// Compact integer modes, stored in the two low bits of the first byte.
const (
	compactModeSingle = 0b00
	compactModeTwo    = 0b01
	compactModeFour   = 0b10
	compactModeBig    = 0b11

	compactSingleLimit = 1 << 6
	compactTwoLimit    = 1 << 14
	compactFourLimit   = 1 << 30

	// MaxCompactSize is the longest encoding of a 64-bit compact integer.
	MaxCompactSize = 9
)

// CompactSize returns the number of bytes AppendCompact writes for v.
func CompactSize(v uint64) int {
	switch {
	case v < compactSingleLimit:
		return 1
	case v < compactTwoLimit:
		return 2
	case v < compactFourLimit:
		return 4
	default:
		return 1 + (bits.Len64(v)+7)/8
	}
}

// AppendCompact appends the canonical compact encoding of v to dst.
func AppendCompact(dst []byte, v uint64) []byte {
	switch {
	case v < compactSingleLimit:
		return append(dst, byte(v<<2)|compactModeSingle)
	case v < compactTwoLimit:
		return append(dst, byte(v<<2)|compactModeTwo, byte(v>>6))
	case v < compactFourLimit:
		high := v >> 6
		return append(dst, byte(v<<2)|compactModeFour, byte(high), byte(high>>8), byte(high>>16))
	default:
		n := (bits.Len64(v) + 7) / 8 // 4..8 since v >= 2^30
		dst = append(dst, byte((n-4)<<2)|compactModeBig)
		for i := range n {
			dst = append(dst, byte(v>>(8*i)))
		}

		return dst
	}
}

// DecodeCompactBytes decodes a compact integer from the start of b and returns it with
// the number of bytes consumed.
func DecodeCompactBytes(b []byte) (uint64, int, error) {
	src := NewSliceSource(b)
	v, err := readCompact(src)
	if err != nil {
		return 0, 0, err
	}

	return v, src.Offset(), nil
}

// readCompact decodes one compact integer from src and rejects non-canonical forms.
func readCompact(src ByteSource) (uint64, error) {
	var buf [8]byte
	if err := ReadExact(src, buf[:1]); err != nil {
		return 0, errs.IO(err)
	}

	head := buf[0]
	switch head & 0b11 {
	case compactModeSingle:
		return uint64(head >> 2), nil
	case compactModeTwo:
		if err := ReadExact(src, buf[1:2]); err != nil {
			return 0, errs.IO(err)
		}
		v := uint64(head>>2) | uint64(buf[1])<<6
		if v < compactSingleLimit {
			return 0, errs.InvalidCompact(head)
		}

		return v, nil
	case compactModeFour:
		if err := ReadExact(src, buf[1:4]); err != nil {
			return 0, errs.IO(err)
		}
		v := uint64(head>>2) | uint64(buf[1])<<6 | uint64(buf[2])<<14 | uint64(buf[3])<<22
		if v < compactTwoLimit {
			return 0, errs.InvalidCompact(head)
		}

		return v, nil
	default:
		n := int(head>>2) + 4
		if n > 8 {
			return 0, errs.CollectionTooLargeToDeserialize(0)
		}

		clear(buf[:])
		if err := ReadExact(src, buf[:n]); err != nil {
			return 0, errs.IO(err)
		}

		var v uint64
		for i := range n {
			v |= uint64(buf[i]) << (8 * i)
		}

		// The shortest form is mandatory: four bytes must carry at least 2^30 and
		// longer forms need a non-zero most significant byte.
		if (n == 4 && v < compactFourLimit) || (n > 4 && buf[n-1] == 0) {
			return 0, errs.InvalidCompact(head)
		}

		return v, nil
	}
}

// EncodeCompactUint encodes any unsigned integer type as a compact integer.
func EncodeCompactUint[T constraints.Unsigned](e *Encoder, v T) error {
	return e.EncodeCompact(uint64(v))
}

// DecodeCompactUint decodes a compact integer into T, failing when it does not fit.
func DecodeCompactUint[T constraints.Unsigned](d *Decoder) (T, error) {
	v, err := d.DecodeCompact()
	if err != nil {
		return 0, err
	}

	if uint64(T(v)) != v {
		return 0, errs.Otherf("compact value %d overflows %T", v, T(0))
	}

	return T(v), nil
}
