package codec

import (
	"io"
	"unsafe"

	"github.com/arloliu/scale/internal/pool"
)

// ByteSink is the output of an Encoder. Bytes passed to successive Write calls are
// contiguous in output order; a sink may forward them immediately or buffer them.
type ByteSink = io.Writer

// BufferSink is a growth-only in-memory sink backed by a pooled buffer. Writes to it
// never fail.
type BufferSink struct {
	buf *pool.ByteBuffer
}

var (
	_ ByteSink      = (*BufferSink)(nil)
	_ io.ByteWriter = (*BufferSink)(nil)
)

// NewBufferSink creates an empty in-memory sink. Call Release to recycle its buffer.
func NewBufferSink() *BufferSink {
	return &BufferSink{buf: pool.GetEncodeBuffer()}
}

// Write appends p to the buffer.
func (s *BufferSink) Write(p []byte) (int, error) {
	if s.buf == nil {
		s.buf = pool.GetEncodeBuffer()
	}

	return s.buf.Write(p)
}

// WriteByte appends c to the buffer.
func (s *BufferSink) WriteByte(c byte) error {
	if s.buf == nil {
		s.buf = pool.GetEncodeBuffer()
	}

	return s.buf.WriteByte(c)
}

// Bytes returns the bytes written so far. The slice is invalidated by Release.
func (s *BufferSink) Bytes() []byte {
	if s.buf == nil {
		return nil
	}

	return s.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (s *BufferSink) Len() int {
	if s.buf == nil {
		return 0
	}

	return s.buf.Len()
}

// Detach returns an owned copy of the written bytes and releases the buffer.
func (s *BufferSink) Detach() []byte {
	if s.buf == nil {
		return []byte{}
	}

	out := s.buf.Clone()
	s.Release()

	return out
}

// Release returns the buffer to its pool.
func (s *BufferSink) Release() {
	pool.PutEncodeBuffer(s.buf)
	s.buf = nil
}

// write forwards p to w, turning a silent short write into io.ErrShortWrite.
func write(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}

	if n != len(p) {
		return io.ErrShortWrite
	}

	return nil
}

// stringBytes views s as a byte slice without copying. Sinks must not modify the
// slice, which io.Writer already forbids.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}
