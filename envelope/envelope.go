package envelope

import (
	"fmt"
	"math"

	"github.com/arloliu/scale/compress"
	"github.com/arloliu/scale/format"
	"github.com/arloliu/scale/internal/hash"
	"github.com/arloliu/scale/internal/options"
	"github.com/arloliu/scale/log"
)

type config struct {
	compression format.CompressionType
	maxPayload  int
	logger      log.Logger
}

// Option configures Seal and Open.
type Option = options.Option[*config]

// WithCompression selects the codec Seal applies to the payload. The default is
// format.CompressionNone. Open ignores it and uses the type recorded in the header.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !c.Valid() {
			return fmt.Errorf("invalid compression type: %d", c)
		}
		cfg.compression = c

		return nil
	})
}

// WithMaxPayload limits the uncompressed payload length Seal accepts and Open
// decompresses. Zero means no limit.
func WithMaxPayload(n int) Option {
	return options.New(func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("invalid max payload: %d", n)
		}
		cfg.maxPayload = n

		return nil
	})
}

// WithLogger reports rejected envelopes to l.
func WithLogger(l log.Logger) Option {
	return options.NoError(func(cfg *config) {
		cfg.logger = log.OrNop(l)
	})
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		compression: format.CompressionNone,
		logger:      log.Nop{},
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) tooLarge(n uint64) bool {
	return n > math.MaxInt || (c.maxPayload > 0 && n > uint64(c.maxPayload))
}

// Seal wraps payload in an envelope.
//
// Returns:
//   - []byte: Newly allocated envelope
//   - error: ErrPayloadTooLarge, an option error or a compression error
func Seal(payload []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.tooLarge(uint64(len(payload))) {
		return nil, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(payload), cfg.maxPayload)
	}

	c, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	body, err := c.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("envelope: compress: %w", err)
	}

	h := Header{
		Version:     format.Version,
		Compression: cfg.compression,
		Checksum:    hash.Sum64(payload),
		Length:      uint64(len(payload)),
	}

	out := make([]byte, 0, h.Size()+len(body))
	out = h.AppendTo(out)

	return append(out, body...), nil
}

// Open validates an envelope and returns its payload.
//
// With format.CompressionNone the payload aliases data.
func Open(data []byte, opts ...Option) ([]byte, Header, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, Header{}, err
	}

	var h Header
	n, err := h.Parse(data)
	if err != nil {
		cfg.logger.Warn("rejected envelope header", log.Fields{"error": err.Error(), "size": len(data)})
		return nil, Header{}, err
	}

	if cfg.tooLarge(h.Length) {
		cfg.logger.Warn("rejected oversized envelope", log.Fields{"length": h.Length, "limit": cfg.maxPayload})
		return nil, h, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, h.Length, cfg.maxPayload)
	}

	c, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, h, err
	}

	payload, err := c.Decompress(data[n:], int(h.Length)) //nolint:gosec
	if err != nil {
		cfg.logger.Warn("envelope body failed to decompress", log.Fields{
			"compression": h.Compression.String(),
			"error":       err.Error(),
		})

		return nil, h, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	if sum := hash.Sum64(payload); sum != h.Checksum {
		cfg.logger.Warn("envelope checksum mismatch", log.Fields{"want": h.Checksum, "got": sum})
		return nil, h, fmt.Errorf("%w: want %016x, got %016x", ErrChecksumMismatch, h.Checksum, sum)
	}

	cfg.logger.Debug("opened envelope", log.Fields{
		"compression": h.Compression.String(),
		"length":      h.Length,
		"sealed_size": len(data),
	})

	return payload, h, nil
}
