package dianoga

import (
	"github.com/dargueta/dianoga/transforms/bwt"
	"github.com/op/go-logging"
)

type config struct {
	sentinel byte
	logger   *logging.Logger
}

// Option is a functional option for configuring a [Codec].
type Option func(*config)

// WithSentinel sets the byte used to terminate the message in the
// Burrows-Wheeler transform. It must not occur in any message compressed with
// the transform enabled, and decompression must use the same value.
func WithSentinel(sentinel byte) Option {
	return func(c *config) {
		c.sentinel = sentinel
	}
}

// WithLogger makes the codec log to `logger` instead of the package's own
// "dianoga" logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func defaultConfig() config {
	return config{
		sentinel: bwt.DefaultSentinel,
		logger:   log,
	}
}
