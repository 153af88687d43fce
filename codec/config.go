package codec

import (
	"fmt"

	"github.com/arloliu/scale/internal/options"
)

// UnknownLength marks a sequence or map whose length is not known up front.
// SCALE cannot encode such collections.
const UnknownLength = -1

type encoderConfig struct {
	maxLength int
}

type decoderConfig struct {
	maxLength    int
	copyBorrowed bool
	strict       bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*decoderConfig]

// WithEncodeLimit rejects strings, byte buffers, sequences and maps longer than n with
// errs.ErrCollectionTooLargeToSerialize. Zero means no limit.
func WithEncodeLimit(n int) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if n < 0 {
			return fmt.Errorf("invalid encode limit: %d", n)
		}
		c.maxLength = n

		return nil
	})
}

// WithDecodeLimit rejects decoded lengths above n with
// errs.ErrCollectionTooLargeToDeserialize. Zero means no limit.
func WithDecodeLimit(n int) DecoderOption {
	return options.New(func(c *decoderConfig) error {
		if n < 0 {
			return fmt.Errorf("invalid decode limit: %d", n)
		}
		c.maxLength = n

		return nil
	})
}

// WithCopyBorrowed makes DecodeBytes and DecodeString copy even when the source lends
// persistent bytes, so decoded values never alias the input.
func WithCopyBorrowed() DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		c.copyBorrowed = true
	})
}

// WithStrict makes top-level decoding fail with errs.ErrTrailingBytes when the input
// is not fully consumed.
func WithStrict() DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		c.strict = true
	})
}
