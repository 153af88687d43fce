package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/scale/errs"
)

func TestSliceSource(t *testing.T) {
	src := NewSliceSource([]byte{1, 2, 3, 4, 5})

	var got Bytes
	require.NoError(t, src.ReadMap(2, func(b Bytes) { got = b }))
	require.True(t, got.IsPersistent())
	require.Equal(t, []byte{1, 2}, got.Data())
	require.Equal(t, 2, got.Len())
	require.Equal(t, 3, src.Remaining())

	buf := make([]byte, 2)
	require.NoError(t, src.ReadExact(buf))
	require.Equal(t, []byte{3, 4}, buf)
	require.Equal(t, 4, src.Offset())

	err := src.ReadMap(2, func(Bytes) { t.Fatal("callback must not run") })
	require.ErrorIs(t, err, errs.ErrEndOfInput)
	require.Equal(t, 1, src.Remaining(), "failed read must not consume")

	require.ErrorIs(t, src.ReadExact(make([]byte, 2)), errs.ErrEndOfInput)
	require.ErrorIs(t, src.ReadMap(-1, func(Bytes) {}), errs.ErrEndOfInput)
}

func TestReaderSource(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	defer src.Release()

	var got []byte
	require.NoError(t, src.ReadMap(3, func(b Bytes) {
		require.False(t, b.IsPersistent())
		got = b.Clone()
	}))
	require.Equal(t, []byte{1, 2, 3}, got)

	buf := make([]byte, 1)
	require.NoError(t, ReadExact(src, buf))
	require.Equal(t, []byte{4}, buf)
	require.Equal(t, int64(4), src.BytesRead())

	err := src.ReadMap(2, func(Bytes) {})
	require.ErrorIs(t, err, errs.ErrEndOfInput)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReaderSource_ReaderError(t *testing.T) {
	boom := errors.New("connection reset")
	src := NewReaderSource(io.MultiReader(bytes.NewReader([]byte{1}), &errReader{err: boom}))
	defer src.Release()

	err := src.ReadMap(4, func(Bytes) {})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, errs.ErrEndOfInput)
}

func TestReaderSource_UseAfterRelease(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{1, 2}))
	src.Release()

	var got []byte
	require.NoError(t, src.ReadMap(2, func(b Bytes) { got = b.Clone() }))
	require.Equal(t, []byte{1, 2}, got)
	src.Release()
}

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}

// mapOnlySource implements only ByteSource, forcing the ReadMap path of ReadExact.
type mapOnlySource struct {
	inner *SliceSource
}

func (s mapOnlySource) ReadMap(n int, fn func(Bytes)) error {
	return s.inner.ReadMap(n, fn)
}

func TestDecoder_CustomSource(t *testing.T) {
	data := encodeWith(t, func(e *Encoder) error {
		if err := e.EncodeU32(0xdeadbeef); err != nil {
			return err
		}

		return e.EncodeString("ok")
	})

	d, err := NewDecoder(mapOnlySource{inner: NewSliceSource(data)}, WithStrict())
	require.NoError(t, err)

	v, err := d.DecodeU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), v)

	s, err := d.DecodeString()
	require.NoError(t, err)
	require.Equal(t, "ok", s)

	// Remaining input is unknown for this source, so strict mode cannot object.
	require.NoError(t, d.Finish())
}

func TestBufferSink(t *testing.T) {
	sink := NewBufferSink()

	n, err := sink.Write([]byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 2, sink.Len())
	require.Equal(t, []byte{1, 2}, sink.Bytes())

	out := sink.Detach()
	require.Equal(t, []byte{1, 2}, out)
	require.Zero(t, sink.Len())
	require.Nil(t, sink.Bytes())

	_, err = sink.Write([]byte{3})
	require.NoError(t, err)
	require.NoError(t, sink.WriteByte(4))
	require.Equal(t, []byte{3, 4}, sink.Detach())
	require.Equal(t, []byte{1, 2}, out)

	require.NoError(t, sink.WriteByte(5))
	require.Equal(t, []byte{5}, sink.Bytes())
	sink.Release()
}

// byteCounter records how bytes reach it so the encoder's sink paths can be told apart.
type byteCounter struct {
	bytes.Buffer
	singles int
}

func (c *byteCounter) WriteByte(b byte) error {
	c.singles++
	return c.Buffer.WriteByte(b)
}

func TestEncoder_ByteWriterSink(t *testing.T) {
	var sink byteCounter
	e, err := NewEncoder(&sink)
	require.NoError(t, err)

	require.NoError(t, e.EncodeBool(true))
	require.NoError(t, e.EncodeU8(7))
	require.NoError(t, e.EncodeNone())
	require.NoError(t, e.EncodeU16(0x0102))

	require.Equal(t, []byte{0x01, 0x07, 0x00, 0x02, 0x01}, sink.Bytes())
	require.Equal(t, 3, sink.singles)
}

type failingByteWriter struct{ bytes.Buffer }

func (*failingByteWriter) WriteByte(byte) error { return errors.New("disk full") }

func TestEncoder_ByteWriterError(t *testing.T) {
	e, err := NewEncoder(&failingByteWriter{})
	require.NoError(t, err)

	err = e.EncodeU8(1)
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorContains(t, err, "disk full")
}
