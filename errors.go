package dianoga

import (
	"github.com/dargueta/dianoga/errors"
)

// These are the same values as in the errors package, repeated here so most
// callers only need to import this one.
const (
	ErrEmptyInput        = errors.ErrEmptyInput
	ErrDecode            = errors.ErrDecode
	ErrSentinelCollision = errors.ErrSentinelCollision
	ErrFormat            = errors.ErrFormat
	ErrInvalidArgument   = errors.ErrInvalidArgument
	ErrIO                = errors.ErrIO
)
