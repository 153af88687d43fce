package codec

import (
	"math"
	"unsafe"

	"github.com/arloliu/scale/endian"
	"github.com/arloliu/scale/errs"
	"github.com/arloliu/scale/internal/pool"
)

// FixedInt is the set of multi-byte fixed-width integer types with a bulk encoding.
type FixedInt interface {
	~uint16 | ~uint32 | ~uint64 | ~int16 | ~int32 | ~int64
}

// EncodeFixedSlice writes a compact length followed by the little-endian bytes of
// every element. The output equals EncodeSlice with the matching primitive encoder.
//
// On little-endian hosts the elements are written straight from the slice memory.
func EncodeFixedSlice[T FixedInt](e *Encoder, s []T) error {
	if err := e.EncodeLen(len(s)); err != nil {
		return err
	}

	if len(s) == 0 {
		return nil
	}

	size := int(unsafe.Sizeof(s[0]))
	if endian.IsNativeLittleEndian() {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
		return e.write(raw)
	}

	bb := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(bb)

	return e.write(putFixed(e.engine, bb.Window(len(s)*size), s))
}

// putFixed stores every element of s into buf, which must hold exactly
// len(s)*sizeof(T) bytes, and returns buf.
func putFixed[T FixedInt](engine endian.EndianEngine, buf []byte, s []T) []byte {
	var zero T
	size := int(unsafe.Sizeof(zero))
	for i, v := range s {
		off := i * size
		switch size {
		case 2:
			engine.PutUint16(buf[off:], uint16(v)) //nolint:gosec
		case 4:
			engine.PutUint32(buf[off:], uint32(v)) //nolint:gosec
		default:
			engine.PutUint64(buf[off:], uint64(v)) //nolint:gosec
		}
	}

	return buf
}

// DecodeFixedSlice reads a compact length and that many little-endian elements. The
// element memory is allocated only after the input for it has been read.
func DecodeFixedSlice[T FixedInt](d *Decoder) ([]T, error) {
	n, err := d.DecodeSeqLen()
	if err != nil {
		return nil, err
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if n > math.MaxInt/size {
		return nil, errs.CollectionTooLargeToDeserialize(uint64(n))
	}

	out := make([]T, 0)
	if n == 0 {
		return out, nil
	}

	readErr := d.src.ReadMap(n*size, func(b Bytes) {
		out = make([]T, n)
		data := b.Data()
		if endian.IsNativeLittleEndian() {
			copy(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(out))), n*size), data)
			return
		}

		for i := range out {
			chunk := data[i*size:]
			switch size {
			case 2:
				out[i] = T(d.engine.Uint16(chunk))
			case 4:
				out[i] = T(d.engine.Uint32(chunk))
			default:
				out[i] = T(d.engine.Uint64(chunk))
			}
		}
	})
	if readErr != nil {
		return nil, errs.IO(readErr)
	}

	return out, nil
}
