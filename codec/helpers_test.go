package codec

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeWith runs fn against a fresh encoder and returns what it wrote.
func encodeWith(t *testing.T, fn func(e *Encoder) error, opts ...EncoderOption) []byte {
	t.Helper()

	sink := NewBufferSink()
	defer sink.Release()

	e, err := NewEncoder(sink, opts...)
	require.NoError(t, err)
	require.NoError(t, fn(e))

	return sink.Detach()
}

// encodeErr runs fn against a fresh encoder and returns its error.
func encodeErr(t *testing.T, fn func(e *Encoder) error, opts ...EncoderOption) error {
	t.Helper()

	sink := NewBufferSink()
	defer sink.Release()

	e, err := NewEncoder(sink, opts...)
	require.NoError(t, err)

	return fn(e)
}

func newSliceDecoder(t *testing.T, data []byte, opts ...DecoderOption) (*Decoder, *SliceSource) {
	t.Helper()

	src := NewSliceSource(data)
	d, err := NewDecoder(src, opts...)
	require.NoError(t, err)

	return d, src
}

// oneByteReader hands out at most one byte per Read to exercise partial reads.
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}

	if len(p) == 0 {
		return 0, nil
	}

	p[0] = r.data[0]
	r.data = r.data[1:]

	return 1, nil
}
