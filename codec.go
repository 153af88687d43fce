package scale

import (
	"errors"
	"fmt"

	"github.com/arloliu/scale/codec"
	"github.com/arloliu/scale/envelope"
	"github.com/arloliu/scale/internal/options"
	"github.com/arloliu/scale/log"
)

// ErrPayloadTooLarge is returned by Codec.Decode for inputs above WithMaxDecode.
var ErrPayloadTooLarge = errors.New("scale: payload too large")

type codecConfig struct {
	maxDecode  int
	sealed     bool
	sealOpts   []envelope.Option
	decodeOpts []codec.DecoderOption
	logger     log.Logger
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*codecConfig]

// WithMaxDecode rejects inputs longer than n bytes before decoding them. Zero means
// no limit.
func WithMaxDecode(n int) CodecOption {
	return options.New(func(c *codecConfig) error {
		if n < 0 {
			return fmt.Errorf("invalid max decode size: %d", n)
		}
		c.maxDecode = n

		return nil
	})
}

// WithSealing wraps every encoding in an envelope built with opts, and expects one
// on decode.
func WithSealing(opts ...envelope.Option) CodecOption {
	return options.NoError(func(c *codecConfig) {
		c.sealed = true
		c.sealOpts = opts
	})
}

// WithDecoderOptions adds decoder options such as codec.WithDecodeLimit.
func WithDecoderOptions(opts ...codec.DecoderOption) CodecOption {
	return options.NoError(func(c *codecConfig) {
		c.decodeOpts = append(c.decodeOpts, opts...)
	})
}

// WithCodecLogger reports rejected payloads to l.
func WithCodecLogger(l log.Logger) CodecOption {
	return options.NoError(func(c *codecConfig) {
		c.logger = log.OrNop(l)
	})
}

// Codec encodes and decodes values of type V to and from byte slices, for storage
// layers that deal in []byte.
//
// Decoding is strict and never aliases the input: decoded values stay valid after
// the caller reuses the buffer.
//
// A Codec is safe for concurrent use.
type Codec[V any] struct {
	enc codec.EncodeFunc[V]
	dec codec.DecodeFunc[V]
	cfg codecConfig
}

// NewCodec creates a Codec from an encode and a decode function.
func NewCodec[V any](enc codec.EncodeFunc[V], dec codec.DecodeFunc[V], opts ...CodecOption) (*Codec[V], error) {
	if enc == nil || dec == nil {
		return nil, errors.New("scale: codec needs both an encode and a decode function")
	}

	c := &Codec[V]{
		enc: enc,
		dec: dec,
		cfg: codecConfig{logger: log.Nop{}},
	}

	if err := options.Apply(&c.cfg, opts...); err != nil {
		return nil, err
	}

	// Appended last so callers cannot switch them off.
	c.cfg.decodeOpts = append(c.cfg.decodeOpts, codec.WithStrict(), codec.WithCopyBorrowed())

	return c, nil
}

// Encode returns the encoding of v, sealed if the codec was built WithSealing.
func (c *Codec[V]) Encode(v V) ([]byte, error) {
	sink := codec.NewBufferSink()
	defer sink.Release()

	e, err := codec.NewEncoder(sink)
	if err != nil {
		return nil, err
	}

	if err := c.enc(e, v); err != nil {
		return nil, err
	}

	if c.cfg.sealed {
		return envelope.Seal(sink.Bytes(), c.cfg.sealOpts...)
	}

	return sink.Detach(), nil
}

// Decode decodes one value from b, which must hold nothing else.
func (c *Codec[V]) Decode(b []byte) (V, error) {
	var zero V

	if c.cfg.maxDecode > 0 && len(b) > c.cfg.maxDecode {
		c.cfg.logger.Warn("rejected oversized payload", log.Fields{"size": len(b), "limit": c.cfg.maxDecode})
		return zero, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), c.cfg.maxDecode)
	}

	payload := b
	if c.cfg.sealed {
		var err error
		if payload, _, err = envelope.Open(b, c.cfg.sealOpts...); err != nil {
			return zero, err
		}
	}

	d, err := codec.NewDecoder(codec.NewSliceSource(payload), c.cfg.decodeOpts...)
	if err != nil {
		return zero, err
	}

	v, err := c.dec(d)
	if err == nil {
		err = d.Finish()
	}

	if err != nil {
		c.cfg.logger.Debug("payload failed to decode", log.Fields{"size": len(payload), "error": err.Error()})
		return zero, err
	}

	return v, nil
}
