package compress

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/scale/format"
)

func getAllCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionZstd: NewZstdCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
}

// scalePayload builds a payload shaped like SCALE output: compact length prefixes
// followed by repetitive strings and little-endian integers.
func scalePayload(records int) []byte {
	var buf bytes.Buffer
	for i := range records {
		name := fmt.Sprintf("account-%04d", i%50)
		buf.WriteByte(byte(len(name) << 2))
		buf.WriteString(name)
		buf.Write([]byte{byte(i), byte(i >> 8), 0, 0})
		buf.WriteByte(byte(i % 3))
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for ct := range getAllCodecs() {
		shared, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, shared)
	}

	_, err := GetCodec(format.CompressionType(9))
	require.ErrorContains(t, err, "unsupported compression type")

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	random := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(random) //nolint:gosec

	payloads := map[string][]byte{
		"single byte":   {0x2a},
		"small":         scalePayload(3),
		"repetitive":    scalePayload(2000),
		"random":        random,
		"all zero 64KB": make([]byte, 64*1024),
	}

	for ct, codec := range getAllCodecs() {
		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed, len(payload))
				require.NoError(t, err)
				require.Equal(t, payload, restored)
			})
		}
	}
}

func TestAllCodecs_Shrinks(t *testing.T) {
	payload := scalePayload(2000)
	for ct, codec := range getAllCodecs() {
		if ct == format.CompressionNone {
			continue
		}

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		assert.Less(t, len(compressed), len(payload), ct.String())
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for ct, codec := range getAllCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed, 0)
			require.NoError(t, err)
			require.Empty(t, restored)

			_, err = codec.Decompress(nil, 10)
			require.ErrorIs(t, err, ErrSizeMismatch)
		})
	}
}

func TestAllCodecs_SizeMismatch(t *testing.T) {
	payload := scalePayload(100)
	for ct, codec := range getAllCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(payload)+1)
			require.Error(t, err)

			_, err = codec.Decompress(compressed, len(payload)-1)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0x00, 0x01}
	for ct, codec := range getAllCodecs() {
		if ct == format.CompressionNone {
			continue
		}

		t.Run(ct.String(), func(t *testing.T) {
			_, err := codec.Decompress(garbage, 1024)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	payload := scalePayload(500)
	for ct, codec := range getAllCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range 20 {
						compressed, err := codec.Compress(payload)
						if !assert.NoError(t, err) {
							return
						}

						restored, err := codec.Decompress(compressed, len(payload))
						if !assert.NoError(t, err) {
							return
						}
						assert.Equal(t, payload, restored)
					}
				}()
			}
			wg.Wait()
		})
	}
}

func BenchmarkAllCodecs_RoundTrip(b *testing.B) {
	payload := scalePayload(2000)
	for ct, codec := range getAllCodecs() {
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				compressed, _ := codec.Compress(payload)
				_, _ = codec.Decompress(compressed, len(payload))
			}
		})
	}
}
