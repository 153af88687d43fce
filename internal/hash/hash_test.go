package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Sum64([]byte(tt.data)))
		})
	}
}

func TestDigest_Streaming(t *testing.T) {
	data := []byte(randString(257))

	h := New()
	for i := 0; i < len(data); i += 10 {
		n, err := h.Write(data[i:min(i+10, len(data))])
		require.NoError(t, err)
		require.Positive(t, n)
	}
	require.Equal(t, Sum64(data), h.Sum64())
	require.Equal(t, Sum64(nil), New().Sum64())
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkSum64(b *testing.B) {
	data := []byte(randString(64))
	b.ResetTimer()
	for b.Loop() {
		Sum64(data)
	}
}
