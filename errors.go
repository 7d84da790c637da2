package strenum

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Standard sentinel errors for decoding enum values.
var (
	// ErrInvalidUTF8 is returned when the input bytes are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("strenum: invalid utf-8")

	// ErrInvalidValue is returned when a decoded string names no variant.
	ErrInvalidValue = errors.New("strenum: invalid value")

	// ErrInvalidVariant is returned when encoding a value that is not a
	// declared variant, e.g. an out-of-range conversion.
	ErrInvalidVariant = errors.New("strenum: invalid variant")
)

// UTF8Error represents input that is not valid UTF-8. It is never
// conflated with an unknown-variant error: generated parsers check the
// encoding first and only then look the text up.
type UTF8Error struct {
	offset int
}

// Error returns the error string.
func (e *UTF8Error) Error() string {
	return fmt.Sprintf("strenum: invalid utf-8 sequence at byte offset %d", e.offset)
}

// Is reports whether the target error matches UTF8Error.
// This allows errors.Is(utf8Err, ErrInvalidUTF8) to return true.
func (e *UTF8Error) Is(err error) bool {
	return err == ErrInvalidUTF8
}

// Offset returns the byte offset of the first invalid sequence.
func (e *UTF8Error) Offset() int {
	return e.offset
}

// NewUTF8Error returns a new UTF8Error for the given byte offset.
func NewUTF8Error(offset int) *UTF8Error {
	return &UTF8Error{offset: offset}
}

// ValidUTF8 returns a *UTF8Error pointing at the first invalid sequence
// in b, or nil if b is valid UTF-8.
func ValidUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return NewUTF8Error(i)
		}
		i += size
	}
	return NewUTF8Error(len(b))
}

// IsUTF8Error returns true if the error is a UTF8Error.
func IsUTF8Error(err error) bool {
	if err == nil {
		return false
	}
	var e *UTF8Error
	return errors.As(err, &e) || errors.Is(err, ErrInvalidUTF8)
}

// ValueError is returned by the serialization adapters of a generated enum
// when the decoded string names no variant. Expected holds the
// serialization diagnostic of the enum, e.g. "one of [a,b]".
type ValueError struct {
	Value    string
	Expected string
}

// Error returns the error string.
func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value: string %q, expected %s", e.Value, e.Expected)
}

// Is reports whether the target error matches ValueError.
// This allows errors.Is(valueErr, ErrInvalidValue) to return true.
func (e *ValueError) Is(err error) bool {
	return err == ErrInvalidValue
}

// NewValueError returns a new ValueError.
func NewValueError(value, expected string) *ValueError {
	return &ValueError{Value: value, Expected: expected}
}

// IsValueError returns true if the error is a ValueError.
func IsValueError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidValue)
}

// InvalidVariantError is returned by the encoding adapters of a generated
// enum for values that are not declared variants.
type InvalidVariantError struct {
	Type  string
	Value string
}

// Error returns the error string.
func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("strenum: %s is not a declared %s variant", e.Value, e.Type)
}

// Is reports whether the target error matches InvalidVariantError.
func (e *InvalidVariantError) Is(err error) bool {
	return err == ErrInvalidVariant
}

// NewInvalidVariantError returns a new InvalidVariantError. Value is the
// fallback text of the value, e.g. "Color(7)".
func NewInvalidVariantError(typ, value string) *InvalidVariantError {
	return &InvalidVariantError{Type: typ, Value: value}
}
