package errs

import (
	"fmt"
	"unicode/utf8"
)

// UTF8Error describes where UTF-8 validation of a decoded string failed.
type UTF8Error struct {
	// ValidUpTo is the length of the longest valid prefix.
	ValidUpTo int
	// ErrorLen is the length of the invalid sequence, or 0 if the input ended
	// in the middle of an otherwise valid sequence.
	ErrorLen int
}

func (e *UTF8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.ValidUpTo)
	}

	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

// ValidateUTF8 returns nil when b is valid UTF-8, or a *UTF8Error locating the first
// invalid sequence.
func ValidateUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}

	i := 0
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}

		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(b[i:]) {
				return &UTF8Error{ValidUpTo: i}
			}

			return &UTF8Error{ValidUpTo: i, ErrorLen: 1}
		}
		i += size
	}

	return nil
}
