package huffman_test

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/dargueta/dianoga/errors"
	"github.com/dargueta/dianoga/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode__Banana(t *testing.T) {
	bits, ring, err := huffman.Encode([]byte("banana"))
	require.NoError(t, err)
	assert.Equal(t, "100110110", bits)
	assert.Equal(t, 3, ring.Len())

	decoded, err := huffman.Decode(bits, ring)
	require.NoError(t, err)
	assert.Equal(t, []byte("banana"), decoded)
}

func TestEncode__Empty(t *testing.T) {
	_, _, err := huffman.Encode([]byte{})
	assert.ErrorIs(t, err, errors.ErrEmptyInput)

	_, _, _, err = huffman.EncodePacked(nil)
	assert.ErrorIs(t, err, errors.ErrEmptyInput)
}

func TestEncode__SingleSymbol(t *testing.T) {
	bits, ring, err := huffman.Encode([]byte("AAAA"))
	require.NoError(t, err)
	assert.Equal(t, "0000", bits)

	code, ok := ring.Codebook().Code('A')
	require.True(t, ok)
	assert.NotEmpty(t, code)

	decoded, err := huffman.Decode(bits, ring)
	require.NoError(t, err)
	assert.Equal(t, []byte("AAAA"), decoded)
}

func TestRoundTrip(t *testing.T) {
	randomData := make([]byte, 4096)
	_, err := rand.Read(randomData)
	require.NoError(t, err)

	tests := []struct {
		Name string
		Data []byte
	}{
		{"one byte", []byte{42}},
		{"homogenous", bytes.Repeat([]byte{100}, 917)},
		{"text", []byte(strings.Repeat("It was the best of times, it was the worst of times. ", 20))},
		{"every byte", everyByte()},
		{"random", randomData},
	}

	for _, test := range tests {
		t.Run(
			test.Name+"/bitstring",
			func(t *testing.T) {
				bits, ring, err := huffman.Encode(test.Data)
				require.NoError(t, err)

				decoded, err := huffman.Decode(bits, ring)
				require.NoError(t, err)
				assert.Equal(t, test.Data, decoded)
			},
		)
		t.Run(
			test.Name+"/packed",
			func(t *testing.T) {
				packed, nbits, ring, err := huffman.EncodePacked(test.Data)
				require.NoError(t, err)
				assert.Len(t, packed, (nbits+7)/8)

				decoded, err := huffman.DecodePacked(packed, nbits, ring)
				require.NoError(t, err)
				assert.Equal(t, test.Data, decoded)
			},
		)
	}
}

func TestEncodePacked__MatchesBitstring(t *testing.T) {
	message := []byte("the quick brown fox jumps over the lazy dog")
	bits, ring, err := huffman.Encode(message)
	require.NoError(t, err)

	packed, nbits, packedRing, err := huffman.EncodePacked(message)
	require.NoError(t, err)
	assert.Equal(t, len(bits), nbits)
	assert.True(t, ring.Equal(packedRing))

	for i := 0; i < nbits; i++ {
		bit := (packed[i/8] >> (7 - uint(i%8))) & 1
		assert.Equalf(t, bits[i]-'0', bit, "bit %d differs", i)
	}
}

func TestDecode__Truncated(t *testing.T) {
	bits, ring, err := huffman.Encode([]byte("banana"))
	require.NoError(t, err)

	// "10 0 11 0 11 0" minus two bits ends halfway through the second 'n'.
	_, err = huffman.Decode(bits[:len(bits)-2], ring)
	assert.ErrorIs(t, err, errors.ErrDecode)
}

func TestDecode__TableMiss(t *testing.T) {
	bits, ring, err := huffman.Encode([]byte("AAAA"))
	require.NoError(t, err)

	// The ring only has the code "0", so flipping any bit leaves a sequence
	// that can never match.
	corrupted := []byte(bits)
	corrupted[2] = '1'

	decoded, err := huffman.Decode(string(corrupted), ring)
	assert.ErrorIs(t, err, errors.ErrDecode)
	assert.Nil(t, decoded, "partial output returned")
}

func TestDecode__BadCharacter(t *testing.T) {
	_, ring, err := huffman.Encode([]byte("banana"))
	require.NoError(t, err)

	_, err = huffman.Decode("10x", ring)
	assert.ErrorIs(t, err, errors.ErrDecode)
}

func TestDecodePacked__BitCountTooLarge(t *testing.T) {
	packed, nbits, ring, err := huffman.EncodePacked([]byte("banana"))
	require.NoError(t, err)

	_, err = huffman.DecodePacked(packed, nbits+len(packed)*8, ring)
	assert.ErrorIs(t, err, errors.ErrDecode)
}

func everyByte() []byte {
	data := make([]byte, 256*3)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}
