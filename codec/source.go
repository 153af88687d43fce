package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/scale/errs"
	"github.com/arloliu/scale/internal/pool"
)

// Bytes is the result of a read: either a persistent borrow of the source's input,
// valid for as long as that input is, or a temporary borrow, valid only until the
// ReadMap callback returns.
type Bytes struct {
	data       []byte
	persistent bool
}

// PersistentBytes lends b for the lifetime of the underlying input.
func PersistentBytes(b []byte) Bytes {
	return Bytes{data: b, persistent: true}
}

// TemporaryBytes lends b for the duration of the current callback only.
func TemporaryBytes(b []byte) Bytes {
	return Bytes{data: b}
}

// Data returns the borrowed bytes. A temporary borrow must not be retained.
func (b Bytes) Data() []byte {
	return b.data
}

// IsPersistent reports whether Data may be retained after the callback returns.
func (b Bytes) IsPersistent() bool {
	return b.persistent
}

// Len returns the number of borrowed bytes.
func (b Bytes) Len() int {
	return len(b.data)
}

// Clone returns an owned copy of the borrowed bytes.
func (b Bytes) Clone() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)

	return out
}

// ByteSource is the input of a Decoder.
type ByteSource interface {
	// ReadMap reads exactly n bytes and passes them to fn, which runs once.
	// It returns an error wrapping errs.ErrEndOfInput if fewer than n bytes remain.
	ReadMap(n int, fn func(Bytes)) error
}

// ExactReader is implemented by sources that can copy into a caller buffer directly.
type ExactReader interface {
	ReadExact(buf []byte) error
}

// Sizer is implemented by sources that know how many bytes they have left.
type Sizer interface {
	Remaining() int
}

// ReadExact fills buf from src, using the ExactReader fast path when available.
func ReadExact(src ByteSource, buf []byte) error {
	if er, ok := src.(ExactReader); ok {
		return er.ReadExact(buf)
	}

	return src.ReadMap(len(buf), func(b Bytes) {
		copy(buf, b.Data())
	})
}

// remaining returns the bytes left in src, or -1 when unknown.
func remaining(src ByteSource) int {
	if s, ok := src.(Sizer); ok {
		return s.Remaining()
	}

	return -1
}

// SliceSource reads from an in-memory slice and always lends persistent borrows.
type SliceSource struct {
	data []byte
	off  int
}

var (
	_ ByteSource  = (*SliceSource)(nil)
	_ ExactReader = (*SliceSource)(nil)
	_ Sizer       = (*SliceSource)(nil)
)

// NewSliceSource creates a source over data. The slice is not copied.
func NewSliceSource(data []byte) *SliceSource {
	return &SliceSource{data: data}
}

// ReadMap lends the next n bytes of the input.
func (s *SliceSource) ReadMap(n int, fn func(Bytes)) error {
	if n < 0 || n > len(s.data)-s.off {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrEndOfInput, n, len(s.data)-s.off)
	}

	end := s.off + n
	b := s.data[s.off:end:end]
	s.off = end
	fn(PersistentBytes(b))

	return nil
}

// ReadExact copies the next len(buf) bytes into buf.
func (s *SliceSource) ReadExact(buf []byte) error {
	if len(buf) > len(s.data)-s.off {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrEndOfInput, len(buf), len(s.data)-s.off)
	}

	s.off += copy(buf, s.data[s.off:])

	return nil
}

// Remaining returns the number of unread bytes.
func (s *SliceSource) Remaining() int {
	return len(s.data) - s.off
}

// Offset returns the number of bytes consumed so far.
func (s *SliceSource) Offset() int {
	return s.off
}

// readChunk bounds how much scratch space a streaming read claims before the bytes
// actually arrive, so a hostile length prefix cannot force a huge allocation.
const readChunk = 64 * 1024

// ReaderSource reads from an io.Reader. Its borrows are temporary: the bytes live in
// scratch space that is reused by the next read.
type ReaderSource struct {
	r       io.Reader
	scratch *pool.ByteBuffer
	read    int64
}

var (
	_ ByteSource  = (*ReaderSource)(nil)
	_ ExactReader = (*ReaderSource)(nil)
)

// NewReaderSource creates a source over r. Call Release when done to recycle the
// scratch space.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		r:       r,
		scratch: pool.GetScratchBuffer(),
	}
}

// ReadMap reads the next n bytes into scratch space and lends them temporarily.
func (s *ReaderSource) ReadMap(n int, fn func(Bytes)) error {
	if n < 0 {
		return fmt.Errorf("%w: negative read of %d bytes", errs.ErrEndOfInput, n)
	}

	if s.scratch == nil {
		s.scratch = pool.GetScratchBuffer()
	}

	bb := s.scratch
	bb.Reset()
	for bb.Len() < n {
		chunk := min(n-bb.Len(), max(bb.Len(), readChunk))
		start := bb.Len()
		bb.Grow(chunk)
		bb.B = bb.B[:start+chunk]
		if err := s.fill(bb.B[start:]); err != nil {
			return err
		}
	}

	fn(TemporaryBytes(bb.B[:n]))

	return nil
}

// ReadExact reads len(buf) bytes straight into buf.
func (s *ReaderSource) ReadExact(buf []byte) error {
	return s.fill(buf)
}

// BytesRead returns the number of bytes consumed from the reader.
func (s *ReaderSource) BytesRead() int64 {
	return s.read
}

// Release returns the scratch space to its pool. The source must not be used after.
func (s *ReaderSource) Release() {
	pool.PutScratchBuffer(s.scratch)
	s.scratch = nil
}

func (s *ReaderSource) fill(buf []byte) error {
	n, err := io.ReadFull(s.r, buf)
	s.read += int64(n)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: need %d bytes, read %d: %w", errs.ErrEndOfInput, len(buf), n, err)
	}

	return err
}
