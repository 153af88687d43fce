package codec

import (
	"math"

	"github.com/arloliu/scale/errs"
)

// Option discriminants. An optional boolean folds its value into the discriminant:
// 1 is Some(true) and 2 is Some(false).
const (
	optionNone      = 0
	optionSome      = 1
	optionSomeFalse = 2
)

// EncodeNone writes an absent option.
func (e *Encoder) EncodeNone() error {
	return e.EncodeU8(optionNone)
}

// EncodeSome writes a present option whose payload is written by fn.
//
// Optional booleans must use EncodeSomeBool instead; EncodeOption selects the right
// form automatically.
func (e *Encoder) EncodeSome(fn func(e *Encoder) error) error {
	if err := e.EncodeU8(optionSome); err != nil {
		return err
	}

	return fn(e)
}

// EncodeSomeBool writes a present optional boolean as a single byte: 1 for true and
// 2 for false.
func (e *Encoder) EncodeSomeBool(v bool) error {
	if v {
		return e.EncodeU8(optionSome)
	}

	return e.EncodeU8(optionSomeFalse)
}

// EncodeOptionBool writes an optional boolean: nil is 0, true is 1, false is 2.
func (e *Encoder) EncodeOptionBool(v *bool) error {
	if v == nil {
		return e.EncodeNone()
	}

	return e.EncodeSomeBool(*v)
}

// EncodeVariant writes the index byte of an enum variant. The payload, if any, is
// written by the caller afterwards. Indices beyond 255 fail with
// errs.ErrTooManyVariants.
func (e *Encoder) EncodeVariant(enumName, variantName string, index uint32) error {
	if index > math.MaxUint8 {
		return errs.TooManyVariants(enumName, variantName, index)
	}

	return e.EncodeU8(uint8(index))
}

// EncodeVariantWith writes the index byte of an enum variant followed by its payload.
// Newtype, tuple and struct variants all use this form; field names are not encoded.
func (e *Encoder) EncodeVariantWith(enumName, variantName string, index uint32, fn func(e *Encoder) error) error {
	if err := e.EncodeVariant(enumName, variantName, index); err != nil {
		return err
	}

	return fn(e)
}

// DecodeOption reads an option discriminant. For an absent option it returns false
// without calling fn. For a present one it calls fn to decode the payload and
// returns true.
//
// While fn runs, the decoder acts as a proxy for the discriminant: if the first
// request is DecodeBool, the answer comes from the discriminant (1 true, 2 false)
// and no byte is read. Any other first request under discriminant 2 fails with
// errs.ErrInvalidOption, since 2 only exists for booleans. A payload made of several
// values must therefore be requested through DecodeTuple, DecodeStruct or another
// composite request rather than field by field.
func (d *Decoder) DecodeOption(fn func(d *Decoder) error) (bool, error) {
	if err := d.resolve(); err != nil {
		return false, err
	}

	tag, err := d.readU8()
	if err != nil {
		return false, err
	}

	switch tag {
	case optionNone:
		return false, nil
	case optionSome, optionSomeFalse:
		d.pending = tag
		err := fn(d)
		unresolved := d.pending
		d.pending = 0
		if err != nil {
			return true, err
		}

		if unresolved == optionSomeFalse {
			return true, errs.InvalidOption(unresolved)
		}

		return true, nil
	default:
		return false, errs.InvalidOption(tag)
	}
}

// DecodeOptionBool reads an optional boolean.
func (d *Decoder) DecodeOptionBool() (*bool, error) {
	var v bool
	present, err := d.DecodeOption(func(d *Decoder) (err error) {
		v, err = d.DecodeBool()
		return err
	})
	if err != nil || !present {
		return nil, err
	}

	return &v, nil
}

// DecodeVariantIndex reads the index byte of an enum variant. Rejecting indices the
// enum does not define is up to the caller.
func (d *Decoder) DecodeVariantIndex() (uint8, error) {
	return d.DecodeU8()
}

// DecodeVariant reads the index byte of an enum variant and hands it to fn, which
// decodes the payload of that variant.
func (d *Decoder) DecodeVariant(fn func(index uint8, d *Decoder) error) error {
	index, err := d.DecodeVariantIndex()
	if err != nil {
		return err
	}

	return fn(index, d)
}
