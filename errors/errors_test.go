package errors_test

import (
	"errors"
	"testing"

	derrors "github.com/dargueta/dianoga/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodecErrorWithMessage(t *testing.T) {
	newErr := derrors.ErrDecode.WithMessage("asdfqwerty")
	assert.Equal(
		t,
		"bitstream does not decode to a valid message: asdfqwerty",
		newErr.Error(),
		"error message is wrong",
	)
	assert.ErrorIs(t, newErr, derrors.ErrDecode)
	assert.NotErrorIs(t, newErr, derrors.ErrFormat)
}

func TestCodecErrorWithMessage__Chained(t *testing.T) {
	newErr := derrors.ErrFormat.WithMessage("ring").WithMessage("entry 3")
	assert.Equal(t, "malformed data: ring: entry 3", newErr.Error())
	assert.ErrorIs(t, newErr, derrors.ErrFormat)
}

func TestCodecErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := derrors.ErrIO.Wrap(originalErr)
	expectedMessage := "input/output error: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, derrors.ErrIO, "codec error not set as parent")
}

func TestCodecErrorWrap__AfterWithMessage(t *testing.T) {
	originalErr := errors.New("unexpected EOF")
	newErr := derrors.ErrFormat.WithMessage("payload").Wrap(originalErr)

	assert.Equal(t, "malformed data: payload: unexpected EOF", newErr.Error())
	assert.ErrorIs(t, newErr, originalErr)
	assert.ErrorIs(t, newErr, derrors.ErrFormat)
}
