package codec

import (
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/scale/endian"
	"github.com/arloliu/scale/errs"
	"github.com/arloliu/scale/internal/options"
)

// Decoder reads SCALE encoded values from a ByteSource. The caller drives it with
// typed requests; the decoder cannot discover the shape of the input on its own.
//
// Note: Decoder is NOT thread-safe.
type Decoder struct {
	src     ByteSource
	engine  endian.EndianEngine
	cfg     decoderConfig
	scratch [8]byte

	// pending holds an option discriminant (1 or 2) read by DecodeOption that the
	// next request must resolve; 0 when no option payload is being decoded.
	pending uint8
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		src:    src,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(&d.cfg, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Source returns the source the decoder reads from.
func (d *Decoder) Source() ByteSource {
	return d.src
}

// Finish checks the end state of a top-level decode. With WithStrict it fails with
// errs.ErrTrailingBytes if the source still holds unread bytes.
func (d *Decoder) Finish() error {
	if !d.cfg.strict {
		return nil
	}

	if n := remaining(d.src); n > 0 {
		return errs.IO(errs.ErrTrailingBytes)
	}

	return nil
}

// resolve settles a pending option discriminant before a non-boolean request.
// Discriminant 2 is only meaningful for booleans.
func (d *Decoder) resolve() error {
	if d.pending == 0 {
		return nil
	}

	tag := d.pending
	d.pending = 0
	if tag == optionSomeFalse {
		return errs.InvalidOption(tag)
	}

	return nil
}

func (d *Decoder) read(n int) ([]byte, error) {
	buf := d.scratch[:n]
	if err := ReadExact(d.src, buf); err != nil {
		return nil, errs.IO(err)
	}

	return buf, nil
}

func (d *Decoder) readU8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// readLen decodes a collection length and applies the configured limit.
func (d *Decoder) readLen() (int, error) {
	v, err := readCompact(d.src)
	if err != nil {
		return 0, err
	}

	if v > math.MaxInt || (d.cfg.maxLength > 0 && v > uint64(d.cfg.maxLength)) {
		return 0, errs.CollectionTooLargeToDeserialize(v)
	}

	return int(v), nil
}

// DecodeBool reads a boolean byte. Any value other than 0 or 1 fails with
// errs.ErrExpectedBoolean. Inside an option payload the discriminant already carries
// the answer and nothing is read.
func (d *Decoder) DecodeBool() (bool, error) {
	if d.pending != 0 {
		v := d.pending == optionSome
		d.pending = 0

		return v, nil
	}

	b, err := d.readU8()
	if err != nil {
		return false, err
	}

	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.ExpectedBoolean(b)
	}
}

// DecodeU8 reads one byte.
func (d *Decoder) DecodeU8() (uint8, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	return d.readU8()
}

// DecodeU16 reads 2 little-endian bytes.
func (d *Decoder) DecodeU16() (uint16, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	b, err := d.read(2)
	if err != nil {
		return 0, err
	}

	return d.engine.Uint16(b), nil
}

// DecodeU32 reads 4 little-endian bytes.
func (d *Decoder) DecodeU32() (uint32, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	b, err := d.read(4)
	if err != nil {
		return 0, err
	}

	return d.engine.Uint32(b), nil
}

// DecodeU64 reads 8 little-endian bytes.
func (d *Decoder) DecodeU64() (uint64, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	b, err := d.read(8)
	if err != nil {
		return 0, err
	}

	return d.engine.Uint64(b), nil
}

// DecodeI8 reads one two's complement byte.
func (d *Decoder) DecodeI8() (int8, error) {
	v, err := d.DecodeU8()
	return int8(v), err //nolint:gosec
}

// DecodeI16 reads 2 little-endian bytes.
func (d *Decoder) DecodeI16() (int16, error) {
	v, err := d.DecodeU16()
	return int16(v), err //nolint:gosec
}

// DecodeI32 reads 4 little-endian bytes.
func (d *Decoder) DecodeI32() (int32, error) {
	v, err := d.DecodeU32()
	return int32(v), err //nolint:gosec
}

// DecodeI64 reads 8 little-endian bytes.
func (d *Decoder) DecodeI64() (int64, error) {
	v, err := d.DecodeU64()
	return int64(v), err //nolint:gosec
}

// DecodeF32 always fails: SCALE has no floating point representation.
func (d *Decoder) DecodeF32() (float32, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	return 0, errs.ErrFloatingPointUnsupported
}

// DecodeF64 always fails: SCALE has no floating point representation.
func (d *Decoder) DecodeF64() (float64, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	return 0, errs.ErrFloatingPointUnsupported
}

// DecodeChar reads a UTF-32 code point and checks it is a Unicode scalar value.
func (d *Decoder) DecodeChar() (rune, error) {
	v, err := d.DecodeU32()
	if err != nil {
		return 0, err
	}

	if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, errs.InvalidCharacter(v)
	}

	return rune(v), nil
}

// DecodeCompact reads a compact integer.
func (d *Decoder) DecodeCompact() (uint64, error) {
	if err := d.resolve(); err != nil {
		return 0, err
	}

	return readCompact(d.src)
}

// DecodeBytesFunc reads a compact length and lends that many bytes to fn. Persistent
// borrows may be retained by fn; temporary ones must be copied.
func (d *Decoder) DecodeBytesFunc(fn func(Bytes) error) error {
	if err := d.resolve(); err != nil {
		return err
	}

	n, err := d.readLen()
	if err != nil {
		return err
	}

	var fnErr error
	if err := d.src.ReadMap(n, func(b Bytes) { fnErr = fn(b) }); err != nil {
		return errs.IO(err)
	}

	return fnErr
}

// DecodeBytes reads a byte buffer. With a persistent borrow the result aliases the
// input unless WithCopyBorrowed is set.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	var out []byte
	err := d.DecodeBytesFunc(func(b Bytes) error {
		if b.IsPersistent() && !d.cfg.copyBorrowed {
			out = b.Data()
		} else {
			out = b.Clone()
		}

		return nil
	})

	return out, err
}

// DecodeStringFunc reads a string and lends its validated UTF-8 bytes to fn.
// The declared number of bytes is consumed even when validation fails.
func (d *Decoder) DecodeStringFunc(fn func(Bytes) error) error {
	return d.DecodeBytesFunc(func(b Bytes) error {
		if err := errs.ValidateUTF8(b.Data()); err != nil {
			return errs.InvalidUnicode(err)
		}

		return fn(b)
	})
}

// DecodeString reads a string. With a persistent borrow the result shares memory
// with the input unless WithCopyBorrowed is set: writing to the input slice after
// decoding changes the returned string, which Go otherwise treats as immutable. Keep
// the input unchanged for as long as the string is in use, or decode with
// WithCopyBorrowed when the input buffer is reused.
func (d *Decoder) DecodeString() (string, error) {
	var out string
	err := d.DecodeStringFunc(func(b Bytes) error {
		data := b.Data()
		switch {
		case len(data) == 0:
			out = ""
		case b.IsPersistent() && !d.cfg.copyBorrowed:
			out = unsafe.String(unsafe.SliceData(data), len(data))
		default:
			out = string(data)
		}

		return nil
	})

	return out, err
}

// DecodeUnit reads nothing.
func (d *Decoder) DecodeUnit() error {
	return d.resolve()
}

// DecodeAny always fails: SCALE input cannot be decoded without knowing its type.
func (d *Decoder) DecodeAny() error {
	if err := d.resolve(); err != nil {
		return err
	}

	return errs.ErrTypeMustBeKnown
}

// DecodeValue decodes into a value that describes itself. A nil target fails with
// errs.ErrTypeMustBeKnown.
func (d *Decoder) DecodeValue(v Unmarshaler) error {
	if v == nil {
		return errs.ErrTypeMustBeKnown
	}

	return v.UnmarshalSCALE(d)
}
