// Package errors defines the error values returned by every stage of the
// compressor.
//
// Each base error is a string constant. Callers attach context with
// [CodecError.WithMessage] or an underlying cause with [CodecError.Wrap]; the
// result still matches the base error with the standard library's errors.Is.
package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is an error with a customizable message that keeps track of the
// base error it was derived from.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseError string

// ErrEmptyInput is returned when asked to build a Huffman code from zero symbols.
const ErrEmptyInput = baseError("no symbols to encode")

// ErrDecode is returned when a bitstream runs out, or stops matching any code,
// before resolving to a symbol.
const ErrDecode = baseError("bitstream does not decode to a valid message")

// ErrSentinelCollision is returned when the input to the Burrows-Wheeler
// transform contains the reserved sentinel byte.
const ErrSentinelCollision = baseError("input contains the reserved sentinel byte")

// ErrFormat is returned when serialized data (a container, a ring, a payload
// header, or a transformed block) cannot be parsed.
const ErrFormat = baseError("malformed data")

// ErrInvalidArgument is returned when a caller passes a value outside of its
// valid domain.
const ErrInvalidArgument = baseError("invalid argument")

// ErrIO is returned when reading from or writing to an underlying stream fails.
const ErrIO = baseError("input/output error")

func (e baseError) Error() string {
	return string(e)
}

func (e baseError) WithMessage(message string) CodecError {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), message),
		originalError: e,
	}
}

func (e baseError) Wrap(err error) CodecError {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customError) Error() string {
	return e.message
}

func (e customError) WithMessage(message string) CodecError {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customError) Wrap(err error) CodecError {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customError) Unwrap() error {
	return e.originalError
}
