// Package hash provides the xxHash64 digests used for canonical value digests and
// envelope checksums.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64 state. It is an io.Writer, so an encoder can write
// straight into it without materializing the encoded bytes.
type Digest struct {
	d *xxhash.Digest
}

var _ io.Writer = (*Digest)(nil)

// New returns an empty streaming digest.
func New() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds p to the running hash. It never fails.
func (h *Digest) Write(p []byte) (int, error) {
	return h.d.Write(p)
}

// Sum64 returns the hash of everything written so far.
func (h *Digest) Sum64() uint64 {
	return h.d.Sum64()
}
