package testing

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Sample is a named message used as input to round-trip tests.
type Sample struct {
	Name string
	Data []byte
}

// RandomMessage creates `length` random bytes, none of which are in `exclude`.
// It's guaranteed to either return a valid slice or fail the test and abort.
func RandomMessage(t *testing.T, length int, exclude ...byte) []byte {
	message := make([]byte, length)
	_, err := rand.Read(message)
	require.NoErrorf(t, err, "failed to generate %d random bytes", length)

	var excluded [256]bool
	for _, value := range exclude {
		excluded[value] = true
	}
	require.Less(t, len(exclude), 256, "can't exclude every byte value")

	for i, value := range message {
		for excluded[value] {
			value++
		}
		message[i] = value
	}
	return message
}

// EveryByteExcept returns each byte value from 0 to 255 once, in ascending
// order, skipping those in `exclude`.
func EveryByteExcept(exclude ...byte) []byte {
	message := make([]byte, 0, 256)
	for i := 0; i < 256; i++ {
		if bytes.IndexByte(exclude, byte(i)) < 0 {
			message = append(message, byte(i))
		}
	}
	return message
}

// Samples returns a set of messages covering the edge cases of the pipeline:
// empty input, a single distinct byte, text, and random data. None of them
// contain `sentinel`, so they can all be compressed with the transform enabled.
func Samples(t *testing.T, sentinel byte) []Sample {
	text := strings.Repeat(
		"It was the best of times, it was the worst of times, it was the age of wisdom. ",
		25,
	)

	return []Sample{
		{"empty", []byte{}},
		{"one byte", []byte{'q'}},
		{"banana", []byte("banana")},
		{"homogenous", bytes.Repeat([]byte{'A'}, 4096)},
		{"two symbols", bytes.Repeat([]byte{0x00, 0xff, 0xff}, 333)},
		{"text", []byte(text)},
		{"every byte", EveryByteExcept(sentinel)},
		{"random", RandomMessage(t, 8191, sentinel)},
	}
}
