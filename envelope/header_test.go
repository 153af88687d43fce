package envelope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/scale/format"
)

func TestHeader_AppendTo(t *testing.T) {
	h := Header{
		Version:     format.Version,
		Compression: format.CompressionS2,
		Checksum:    0x0102030405060708,
		Length:      64,
	}

	want := []byte{
		'S', 'C', 0x01, 0x03,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x01, 0x01,
	}
	require.Equal(t, want, h.AppendTo(nil))
	require.Equal(t, append([]byte{0xee}, want...), h.AppendTo([]byte{0xee}))
	require.Equal(t, len(want), h.Size())

	var parsed Header
	n, err := parsed.Parse(append(want, 0xaa, 0xbb))
	require.NoError(t, err)
	require.Equal(t, len(want), n)
	require.Equal(t, h, parsed)
}

func TestHeader_Parse_Errors(t *testing.T) {
	valid := Header{Version: format.Version, Compression: format.CompressionNone, Length: 3}.AppendTo(nil)

	mutate := func(fn func(b []byte) []byte) []byte {
		b := append([]byte(nil), valid...)
		return fn(b)
	}

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"too short", valid[:format.HeaderSize], ErrCorrupt},
		{"bad magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), ErrCorrupt},
		{"future version", mutate(func(b []byte) []byte { b[2] = 2; return b }), ErrUnsupportedVersion},
		{"unknown compression", mutate(func(b []byte) []byte { b[3] = 0x7f; return b }), ErrCorrupt},
		{"truncated length", mutate(func(b []byte) []byte { b[format.HeaderSize] = 0x01; return b }), ErrCorrupt},
		{"non-canonical length", mutate(func(b []byte) []byte { return append(b[:format.HeaderSize], 0x01, 0x00) }), ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.data)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
