package codec

import (
	"io"
	"unicode/utf8"

	"github.com/arloliu/scale/endian"
	"github.com/arloliu/scale/errs"
	"github.com/arloliu/scale/internal/options"
)

// Encoder writes SCALE encoded values to a ByteSink.
//
// Every request is written through immediately; the encoder never buffers or reorders
// output, so streaming sinks see bytes in encounter order.
//
// Note: Encoder is NOT thread-safe.
type Encoder struct {
	w       io.Writer
	bw      io.ByteWriter
	engine  endian.EndianEngine
	cfg     encoderConfig
	scratch [16]byte
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		w:      w,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(&e.cfg, opts...); err != nil {
		return nil, err
	}

	// Single bytes (tags, booleans, small compacts) skip the slice write when the
	// sink can take them directly.
	if bw, ok := w.(io.ByteWriter); ok {
		e.bw = bw
	}

	return e, nil
}

// Writer returns the sink the encoder writes to.
func (e *Encoder) Writer() io.Writer {
	return e.w
}

func (e *Encoder) write(p []byte) error {
	return errs.IO(write(e.w, p))
}

// EncodeBool writes 0 for false and 1 for true.
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.EncodeU8(1)
	}

	return e.EncodeU8(0)
}

// EncodeU8 writes one byte.
func (e *Encoder) EncodeU8(v uint8) error {
	if e.bw != nil {
		return errs.IO(e.bw.WriteByte(v))
	}

	e.scratch[0] = v
	return e.write(e.scratch[:1])
}

// EncodeU16 writes v as 2 little-endian bytes.
func (e *Encoder) EncodeU16(v uint16) error {
	return e.write(e.engine.AppendUint16(e.scratch[:0], v))
}

// EncodeU32 writes v as 4 little-endian bytes.
func (e *Encoder) EncodeU32(v uint32) error {
	return e.write(e.engine.AppendUint32(e.scratch[:0], v))
}

// EncodeU64 writes v as 8 little-endian bytes.
func (e *Encoder) EncodeU64(v uint64) error {
	return e.write(e.engine.AppendUint64(e.scratch[:0], v))
}

// EncodeI8 writes v as one two's complement byte.
func (e *Encoder) EncodeI8(v int8) error {
	return e.EncodeU8(uint8(v)) //nolint:gosec
}

// EncodeI16 writes v as 2 little-endian bytes.
func (e *Encoder) EncodeI16(v int16) error {
	return e.EncodeU16(uint16(v)) //nolint:gosec
}

// EncodeI32 writes v as 4 little-endian bytes.
func (e *Encoder) EncodeI32(v int32) error {
	return e.EncodeU32(uint32(v)) //nolint:gosec
}

// EncodeI64 writes v as 8 little-endian bytes.
func (e *Encoder) EncodeI64(v int64) error {
	return e.EncodeU64(uint64(v)) //nolint:gosec
}

// EncodeF32 always fails: SCALE has no floating point representation.
func (e *Encoder) EncodeF32(float32) error {
	return errs.ErrFloatingPointUnsupported
}

// EncodeF64 always fails: SCALE has no floating point representation.
func (e *Encoder) EncodeF64(float64) error {
	return errs.ErrFloatingPointUnsupported
}

// EncodeChar writes r as a UTF-32 code point. Surrogates and values beyond
// utf8.MaxRune are rejected.
func (e *Encoder) EncodeChar(r rune) error {
	if !utf8.ValidRune(r) {
		return errs.InvalidCharacter(uint32(r)) //nolint:gosec
	}

	return e.EncodeU32(uint32(r))
}

// EncodeCompact writes v as a compact integer.
func (e *Encoder) EncodeCompact(v uint64) error {
	return e.write(AppendCompact(e.scratch[:0], v))
}

// EncodeLen writes a collection length prefix. UnknownLength fails with
// errs.ErrLengthNeeded.
func (e *Encoder) EncodeLen(n int) error {
	if n < 0 {
		return errs.ErrLengthNeeded
	}

	if e.cfg.maxLength > 0 && n > e.cfg.maxLength {
		return errs.CollectionTooLargeToSerialize(uint64(n))
	}

	return e.EncodeCompact(uint64(n))
}

// EncodeBytes writes a compact length followed by b.
func (e *Encoder) EncodeBytes(b []byte) error {
	if err := e.EncodeLen(len(b)); err != nil {
		return err
	}

	if len(b) == 0 {
		return nil
	}

	return e.write(b)
}

// EncodeString writes a compact length followed by the UTF-8 bytes of s.
func (e *Encoder) EncodeString(s string) error {
	return e.EncodeBytes(stringBytes(s))
}

// EncodeUnit writes nothing.
func (e *Encoder) EncodeUnit() error {
	return nil
}

// EncodeValue encodes a value that describes itself.
func (e *Encoder) EncodeValue(v Marshaler) error {
	if v == nil {
		return errs.Other("cannot encode a nil value")
	}

	return v.MarshalSCALE(e)
}
