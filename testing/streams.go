package testing

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// NewStream returns a seekable stream over a copy of `data`, positioned at the
// start.
//
//   - Writes to the stream do not affect `data`.
//   - The stream's size is fixed to `len(data)`. Writing past the end of it
//     will trigger an error.
func NewStream(t *testing.T, data []byte) io.ReadWriteSeeker {
	backing := make([]byte, len(data))
	copy(backing, data)

	stream := bytesextra.NewReadWriteSeeker(backing)
	offset, err := stream.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Zero(t, offset)
	return stream
}

// ReadAllFrom rewinds `stream` and returns everything in it.
func ReadAllFrom(t *testing.T, stream io.ReadSeeker) []byte {
	_, err := stream.Seek(0, io.SeekStart)
	require.NoError(t, err, "failed to rewind stream")

	data, err := io.ReadAll(stream)
	require.NoError(t, err, "failed to read stream")
	return data
}
