package envelope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/scale/format"
	"github.com/arloliu/scale/log"
)

type capture struct {
	log.Nop
	warns []string
}

func (c *capture) Warn(msg string, _ log.Fields) { c.warns = append(c.warns, msg) }

func payload() []byte {
	return bytes.Repeat([]byte{0x10, 'a', 'b', 'c', 'd', 0x2a, 0x00, 0x00, 0x00}, 200)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			in := payload()
			sealed, err := Seal(in, WithCompression(ct))
			require.NoError(t, err)

			out, h, err := Open(sealed)
			require.NoError(t, err)
			require.Equal(t, in, out)
			require.Equal(t, ct, h.Compression)
			require.Equal(t, uint64(len(in)), h.Length)
			require.Equal(t, format.Version, h.Version)

			if ct != format.CompressionNone {
				require.Less(t, len(sealed), len(in))
			}
		})
	}
}

func TestSealOpen_Empty(t *testing.T) {
	sealed, err := Seal(nil, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.Len(t, sealed, format.HeaderSize+1)

	out, _, err := Open(sealed)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestOpen_ChecksumMismatch(t *testing.T) {
	sealed, err := Seal(payload())
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff

	logger := &capture{}
	_, _, err = Open(sealed, WithLogger(logger))
	require.ErrorIs(t, err, ErrChecksumMismatch)
	require.Equal(t, []string{"envelope checksum mismatch"}, logger.warns)
}

func TestOpen_CorruptBody(t *testing.T) {
	sealed, err := Seal(payload(), WithCompression(format.CompressionS2))
	require.NoError(t, err)

	h, err := ParseHeader(sealed)
	require.NoError(t, err)

	truncated := sealed[:h.Size()+4]
	_, _, err = Open(truncated)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestMaxPayload(t *testing.T) {
	in := payload()

	_, err := Seal(in, WithMaxPayload(len(in)-1))
	require.ErrorIs(t, err, ErrPayloadTooLarge)

	sealed, err := Seal(in, WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	logger := &capture{}
	_, h, err := Open(sealed, WithMaxPayload(100), WithLogger(logger))
	require.ErrorIs(t, err, ErrPayloadTooLarge)
	require.Equal(t, uint64(len(in)), h.Length)
	require.Len(t, logger.warns, 1)

	out, _, err := Open(sealed, WithMaxPayload(len(in)))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestOptions_Invalid(t *testing.T) {
	_, err := Seal(nil, WithCompression(format.CompressionType(0)))
	require.Error(t, err)

	_, _, err = Open(nil, WithMaxPayload(-1))
	require.Error(t, err)

	_, _, err = Open(nil, WithLogger(nil))
	require.ErrorIs(t, err, ErrCorrupt)
}
