package codec

import (
	"cmp"
	"maps"
	"reflect"
	"slices"

	"github.com/arloliu/scale/errs"
)

// Marshaler is implemented by types that write their own SCALE encoding.
type Marshaler interface {
	MarshalSCALE(e *Encoder) error
}

// Unmarshaler is implemented by types that read their own SCALE encoding.
//
// Implementations whose encoding spans more than one value should wrap their reads
// in Decoder.DecodeStruct or Decoder.DecodeTuple so they decode correctly as the
// payload of an option.
type Unmarshaler interface {
	UnmarshalSCALE(d *Decoder) error
}

// EncodeFunc writes one value of type T.
type EncodeFunc[T any] func(e *Encoder, v T) error

// DecodeFunc reads one value of type T.
type DecodeFunc[T any] func(d *Decoder) (T, error)

// maxPrealloc bounds the capacity reserved for a decoded collection whose source
// cannot report its remaining size.
const maxPrealloc = 1024

// preallocCap returns a safe initial capacity for n decoded elements. Each element
// occupies at least one input byte unless it is zero-sized, so the remaining input
// size bounds useful preallocation.
func preallocCap(d *Decoder, n int) int {
	if rem := remaining(d.src); rem >= 0 {
		return min(n, rem)
	}

	return min(n, maxPrealloc)
}

// EncodeSlice writes a compact length followed by every element of s.
func EncodeSlice[T any](e *Encoder, s []T, fn EncodeFunc[T]) error {
	return e.EncodeSeq(len(s), func(e *Encoder) error {
		for i := range s {
			if err := fn(e, s[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

// DecodeSlice reads a compact length and that many elements.
//
// The result is never nil on success; an empty sequence decodes to an empty slice.
func DecodeSlice[T any](d *Decoder, fn DecodeFunc[T]) ([]T, error) {
	n, err := d.DecodeSeqLen()
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, preallocCap(d, n))
	for range n {
		v, err := fn(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// EncodeArray writes the elements of a fixed-size collection without a length
// prefix.
func EncodeArray[T any](e *Encoder, s []T, fn EncodeFunc[T]) error {
	return e.EncodeTuple(func(e *Encoder) error {
		for i := range s {
			if err := fn(e, s[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

// DecodeArray fills dst with len(dst) elements. A fixed-size collection carries no
// length prefix, so the caller supplies the size.
func DecodeArray[T any](d *Decoder, dst []T, fn DecodeFunc[T]) error {
	return d.DecodeTuple(func(d *Decoder) error {
		for i := range dst {
			v, err := fn(d)
			if err != nil {
				return err
			}
			dst[i] = v
		}

		return nil
	})
}

// EncodeOption writes an optional value. A nil pointer is None.
//
// When the underlying type of T is bool, including named types such as
// `type Flag bool`, the value folds into the discriminant (1 for true, 2 for false)
// and fn is not called.
func EncodeOption[T any](e *Encoder, v *T, fn EncodeFunc[T]) error {
	if v == nil {
		return e.EncodeNone()
	}

	if reflect.TypeFor[T]().Kind() == reflect.Bool {
		return e.EncodeSomeBool(reflect.ValueOf(*v).Bool())
	}

	return e.EncodeSome(func(e *Encoder) error {
		return fn(e, *v)
	})
}

// DecodeOption reads an optional value, returning nil for None.
//
// fn must issue a single request for the payload: a primitive, or a composite
// request such as Decoder.DecodeStruct that groups several reads.
func DecodeOption[T any](d *Decoder, fn DecodeFunc[T]) (*T, error) {
	var v T
	present, err := d.DecodeOption(func(d *Decoder) (err error) {
		v, err = fn(d)
		return err
	})
	if err != nil || !present {
		return nil, err
	}

	return &v, nil
}

// EncodeMap writes a compact entry count followed by each key and its value.
// Keys are written in ascending order so equal maps encode to equal bytes.
func EncodeMap[K cmp.Ordered, V any](e *Encoder, m map[K]V, kfn EncodeFunc[K], vfn EncodeFunc[V]) error {
	keys := slices.Sorted(maps.Keys(m))

	return e.EncodeMap(len(keys), func(e *Encoder) error {
		for _, k := range keys {
			err := e.EncodeMapEntry(
				func(e *Encoder) error { return kfn(e, k) },
				func(e *Encoder) error { return vfn(e, m[k]) },
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DecodeMap reads a compact entry count and that many key and value pairs.
// A repeated key keeps the value decoded last.
func DecodeMap[K comparable, V any](d *Decoder, kfn DecodeFunc[K], vfn DecodeFunc[V]) (map[K]V, error) {
	n, err := d.DecodeMapLen()
	if err != nil {
		return nil, err
	}

	out := make(map[K]V, preallocCap(d, n))
	for range n {
		k, err := kfn(d)
		if err != nil {
			return nil, err
		}

		v, err := vfn(d)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, nil
}

// Result holds either a success value or a failure value. It encodes as a two
// variant enum: index 0 carries Ok and index 1 carries Err.
type Result[T, E any] struct {
	Ok     T
	Err    E
	Failed bool
}

// OkResult returns a successful Result.
func OkResult[T, E any](v T) Result[T, E] {
	return Result[T, E]{Ok: v}
}

// ErrResult returns a failed Result.
func ErrResult[T, E any](v E) Result[T, E] {
	return Result[T, E]{Err: v, Failed: true}
}

// EncodeResult writes r as its variant index followed by the active payload.
func EncodeResult[T, E any](e *Encoder, r Result[T, E], okFn EncodeFunc[T], errFn EncodeFunc[E]) error {
	if r.Failed {
		return e.EncodeVariantWith("Result", "Err", 1, func(e *Encoder) error {
			return errFn(e, r.Err)
		})
	}

	return e.EncodeVariantWith("Result", "Ok", 0, func(e *Encoder) error {
		return okFn(e, r.Ok)
	})
}

// DecodeResult reads a Result. Variant indices other than 0 and 1 are rejected.
func DecodeResult[T, E any](d *Decoder, okFn DecodeFunc[T], errFn DecodeFunc[E]) (Result[T, E], error) {
	var r Result[T, E]
	err := d.DecodeVariant(func(index uint8, d *Decoder) (err error) {
		switch index {
		case 0:
			r.Ok, err = okFn(d)
		case 1:
			r.Failed = true
			r.Err, err = errFn(d)
		default:
			err = errs.Otherf("invalid Result variant index %d", index)
		}

		return err
	})

	return r, err
}
