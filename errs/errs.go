// Package errs defines the error taxonomy shared by every SCALE encoding and decoding
// operation.
//
// All codec failures are reported as *Error values carrying a Kind. The package also
// exports one sentinel per kind so callers can match with errors.Is without caring about
// the parameters of a particular failure:
//
//	if errors.Is(err, errs.ErrInvalidOption) {
//	    var e *errs.Error
//	    errors.As(err, &e)
//	    log.Printf("bad option discriminant %d", e.Found)
//	}
//
// Errors are deterministic: the same invalid input always fails with the same kind, so
// none of them are worth retrying.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies a class of codec failure.
type Kind uint8

const (
	KindFloatingPointUnsupported Kind = iota + 1
	KindTooManyVariants
	KindLengthNeeded
	KindTypeMustBeKnown
	KindExpectedBoolean
	KindInvalidCharacter
	KindCollectionTooLargeToSerialize
	KindCollectionTooLargeToDeserialize
	KindInvalidUnicode
	KindInvalidOption
	KindInvalidCompact
	KindIO
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFloatingPointUnsupported:
		return "FloatingPointUnsupported"
	case KindTooManyVariants:
		return "TooManyVariants"
	case KindLengthNeeded:
		return "LengthNeeded"
	case KindTypeMustBeKnown:
		return "TypeMustBeKnown"
	case KindExpectedBoolean:
		return "ExpectedBoolean"
	case KindInvalidCharacter:
		return "InvalidCharacter"
	case KindCollectionTooLargeToSerialize:
		return "CollectionTooLargeToSerialize"
	case KindCollectionTooLargeToDeserialize:
		return "CollectionTooLargeToDeserialize"
	case KindInvalidUnicode:
		return "InvalidUnicode"
	case KindInvalidOption:
		return "InvalidOption"
	case KindInvalidCompact:
		return "InvalidCompact"
	case KindIO:
		return "Io"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Error is a codec failure. Only the fields relevant to Kind are populated.
type Error struct {
	Kind Kind

	// EnumName, VariantName and VariantIndex describe a TooManyVariants failure.
	EnumName     string
	VariantName  string
	VariantIndex uint32

	// Found is the offending byte (ExpectedBoolean, InvalidOption, InvalidCompact)
	// or code point (InvalidCharacter).
	Found uint32

	// Len is the rejected length of a CollectionTooLarge failure.
	Len uint64

	// Msg is the message of an Other failure.
	Msg string

	// Err is the cause of an Io or InvalidUnicode failure.
	Err error
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	switch e.Kind {
	case KindFloatingPointUnsupported:
		return "floating point values are not supported by the SCALE encoding"
	case KindTooManyVariants:
		return fmt.Sprintf("variant %s::%s has index %d but the SCALE encoding limits enumerations to 256 variants",
			e.EnumName, e.VariantName, e.VariantIndex)
	case KindLengthNeeded:
		return "sequence length unknown but the SCALE encoding requires it"
	case KindTypeMustBeKnown:
		return "type unknown but the SCALE encoding requires it"
	case KindExpectedBoolean:
		return fmt.Sprintf("expected boolean (0 or 1), found %d", e.Found)
	case KindInvalidCharacter:
		return fmt.Sprintf("%d is an invalid UTF-32 code point", e.Found)
	case KindCollectionTooLargeToSerialize:
		return fmt.Sprintf("found a collection of %d elements but this implementation limits collections to 2^64 elements", e.Len)
	case KindCollectionTooLargeToDeserialize:
		if e.Len != 0 {
			return fmt.Sprintf("collection of %d elements exceeds the decoding limit", e.Len)
		}

		return "collections of more than 2^64 elements are not supported"
	case KindInvalidUnicode:
		return fmt.Sprintf("invalid unicode in string: %v", e.Err)
	case KindInvalidOption:
		return fmt.Sprintf("invalid option: expected a discriminant of 0, 1 or 2 (booleans only) but found %d", e.Found)
	case KindInvalidCompact:
		return fmt.Sprintf("non-canonical compact integer with header byte 0x%02x", e.Found)
	case KindIO:
		return fmt.Sprintf("i/o error: %v", e.Err)
	case KindOther:
		return e.Msg
	default:
		return "unknown scale error"
	}
}

// Unwrap returns the underlying I/O or UTF-8 validation error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Sentinels for errors.Is matching. They compare equal to any *Error of the same Kind.
var (
	ErrFloatingPointUnsupported        = &Error{Kind: KindFloatingPointUnsupported}
	ErrTooManyVariants                 = &Error{Kind: KindTooManyVariants}
	ErrLengthNeeded                    = &Error{Kind: KindLengthNeeded}
	ErrTypeMustBeKnown                 = &Error{Kind: KindTypeMustBeKnown}
	ErrExpectedBoolean                 = &Error{Kind: KindExpectedBoolean}
	ErrInvalidCharacter                = &Error{Kind: KindInvalidCharacter}
	ErrCollectionTooLargeToSerialize   = &Error{Kind: KindCollectionTooLargeToSerialize}
	ErrCollectionTooLargeToDeserialize = &Error{Kind: KindCollectionTooLargeToDeserialize}
	ErrInvalidUnicode                  = &Error{Kind: KindInvalidUnicode}
	ErrInvalidOption                   = &Error{Kind: KindInvalidOption}
	ErrInvalidCompact                  = &Error{Kind: KindInvalidCompact}
	ErrIO                              = &Error{Kind: KindIO}
	ErrOther                           = &Error{Kind: KindOther}
)

// Source-level errors. They reach callers wrapped in an Io *Error.
var (
	// ErrEndOfInput is returned by byte sources that run out of bytes mid-read.
	ErrEndOfInput = errors.New("end of input")
	// ErrTrailingBytes is returned by strict top-level decoding when input remains.
	ErrTrailingBytes = errors.New("trailing bytes after decoded value")
)

// TooManyVariants reports an enum variant whose index does not fit in one byte.
func TooManyVariants(enumName, variantName string, index uint32) *Error {
	return &Error{Kind: KindTooManyVariants, EnumName: enumName, VariantName: variantName, VariantIndex: index}
}

// ExpectedBoolean reports a boolean byte other than 0 or 1.
func ExpectedBoolean(found byte) *Error {
	return &Error{Kind: KindExpectedBoolean, Found: uint32(found)}
}

// InvalidCharacter reports a value that is not a Unicode scalar value.
func InvalidCharacter(found uint32) *Error {
	return &Error{Kind: KindInvalidCharacter, Found: found}
}

// CollectionTooLargeToSerialize reports a length beyond the compact integer range.
func CollectionTooLargeToSerialize(n uint64) *Error {
	return &Error{Kind: KindCollectionTooLargeToSerialize, Len: n}
}

// CollectionTooLargeToDeserialize reports a decoded length this process cannot hold.
// A zero n means the length itself did not fit in 64 bits.
func CollectionTooLargeToDeserialize(n uint64) *Error {
	return &Error{Kind: KindCollectionTooLargeToDeserialize, Len: n}
}

// InvalidUnicode wraps a UTF-8 validation failure.
func InvalidUnicode(cause error) *Error {
	return &Error{Kind: KindInvalidUnicode, Err: cause}
}

// InvalidOption reports an option discriminant outside {0, 1, 2}, or 2 used for a
// non-boolean payload.
func InvalidOption(found byte) *Error {
	return &Error{Kind: KindInvalidOption, Found: uint32(found)}
}

// InvalidCompact reports a compact integer that is not in canonical form.
func InvalidCompact(header byte) *Error {
	return &Error{Kind: KindInvalidCompact, Found: uint32(header)}
}

// IO wraps an error from the underlying byte source or sink. A nil cause yields nil.
// An error that already is an *Error is returned unchanged.
func IO(cause error) error {
	if cause == nil {
		return nil
	}

	var e *Error
	if errors.As(cause, &e) {
		return cause
	}

	return &Error{Kind: KindIO, Err: cause}
}

// Other builds an error for custom failures raised while describing values.
func Other(msg string) *Error {
	return &Error{Kind: KindOther, Msg: msg}
}

// Otherf is Other with fmt.Sprintf formatting.
func Otherf(format string, args ...any) *Error {
	return Other(fmt.Sprintf(format, args...))
}
