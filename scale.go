package scale

import (
	"io"

	"github.com/arloliu/scale/codec"
	"github.com/arloliu/scale/envelope"
	"github.com/arloliu/scale/errs"
	"github.com/arloliu/scale/internal/hash"
)

// Marshal returns the SCALE encoding of v.
//
// Parameters:
//   - v: Value to encode
//   - opts: Encoder options such as codec.WithEncodeLimit
//
// Returns:
//   - []byte: Newly allocated encoding owned by the caller
//   - error: Any *errs.Error raised while encoding
func Marshal(v codec.Marshaler, opts ...codec.EncoderOption) ([]byte, error) {
	sink := codec.NewBufferSink()
	defer sink.Release()

	if err := MarshalTo(sink, v, opts...); err != nil {
		return nil, err
	}

	return sink.Detach(), nil
}

// MarshalTo writes the SCALE encoding of v to w. Bytes reach w as they are produced;
// on failure w may have received a prefix of the encoding.
func MarshalTo(w io.Writer, v codec.Marshaler, opts ...codec.EncoderOption) error {
	e, err := codec.NewEncoder(w, opts...)
	if err != nil {
		return err
	}

	return e.EncodeValue(v)
}

// Unmarshal decodes data into v. With codec.WithStrict, bytes left after the value
// fail with errs.ErrTrailingBytes.
func Unmarshal(data []byte, v codec.Unmarshaler, opts ...codec.DecoderOption) error {
	d, err := codec.NewDecoder(codec.NewSliceSource(data), opts...)
	if err != nil {
		return err
	}

	if err := d.DecodeValue(v); err != nil {
		return err
	}

	return d.Finish()
}

// UnmarshalFrom decodes one value from r into v. Exactly the bytes of the value are
// consumed from r, so further values can be read from it afterwards.
func UnmarshalFrom(r io.Reader, v codec.Unmarshaler, opts ...codec.DecoderOption) error {
	src := codec.NewReaderSource(r)
	defer src.Release()

	d, err := codec.NewDecoder(src, opts...)
	if err != nil {
		return err
	}

	return d.DecodeValue(v)
}

// Digest returns the xxHash64 of the SCALE encoding of v. The encoding is streamed
// into the hash and never materialized. Equal values have equal digests as long as
// their encodings are canonical, which holds for every helper in the codec package.
func Digest(v codec.Marshaler) (uint64, error) {
	h := hash.New()
	if err := MarshalTo(h, v); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// Size returns the length of the SCALE encoding of v without keeping the bytes.
func Size(v codec.Marshaler) (int, error) {
	var c counter
	if err := MarshalTo(&c, v); err != nil {
		return 0, err
	}

	return c.n, nil
}

type counter struct {
	n int
}

func (c *counter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

// MarshalSealed encodes v and wraps the encoding in an envelope.
func MarshalSealed(v codec.Marshaler, opts ...envelope.Option) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	return envelope.Seal(data, opts...)
}

// UnmarshalSealed opens an envelope produced by MarshalSealed and decodes its payload
// into v. The payload must hold exactly one value.
func UnmarshalSealed(data []byte, v codec.Unmarshaler, opts ...envelope.Option) error {
	if v == nil {
		return errs.ErrTypeMustBeKnown
	}

	payload, _, err := envelope.Open(data, opts...)
	if err != nil {
		return err
	}

	return Unmarshal(payload, v, codec.WithStrict())
}
