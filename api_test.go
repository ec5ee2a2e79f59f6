package dianoga_test

import (
	"testing"

	"github.com/dargueta/dianoga"
	"github.com/dargueta/dianoga/huffman"
	dtest "github.com/dargueta/dianoga/testing"
	"github.com/dargueta/dianoga/transforms/bwt"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, useTransform := range []bool{true, false} {
		mode := "transform"
		if !useTransform {
			mode = "huffman_only"
		}

		for _, sample := range dtest.Samples(t, bwt.DefaultSentinel) {
			t.Run(
				mode+"/"+sample.Name,
				func(t *testing.T) {
					compressed, ring, err := dianoga.Compress(sample.Data, useTransform)
					require.NoError(t, err, "unexpected error while compressing")
					t.Logf("compressed %d -> %d", len(sample.Data), len(compressed))

					pad := int(compressed[0])
					assert.LessOrEqual(t, pad, 7)

					decompressed, err := dianoga.Decompress(compressed, ring, useTransform)
					require.NoError(t, err, "unexpected error while decompressing")
					assert.Equal(t, len(sample.Data), len(decompressed), "decompressed data length is wrong")
					assert.Equal(t, sample.Data, decompressed, "decompressed data is wrong")
				},
			)
		}
	}
}

func TestCompress__Banana(t *testing.T) {
	compressed, ring, err := dianoga.Compress([]byte("banana"), true)
	require.NoError(t, err)

	// BWT gives "annb\x11aa", MTF turns that into [97 110 0 99 20 3 0], and
	// the Huffman code for those seven symbols takes 18 bits.
	assert.Equal(t, 6, ring.Len())
	assert.Equal(t, byte(6), compressed[0], "wrong padding")
	assert.Len(t, compressed, 4)

	decompressed, err := dianoga.Decompress(compressed, ring, true)
	require.NoError(t, err)
	assert.Equal(t, []byte("banana"), decompressed)
}

func TestCompress__PadByteMatchesBitCount(t *testing.T) {
	for length := 1; length <= 64; length++ {
		message := dtest.RandomMessage(t, length)
		bits, _, err := huffman.Encode(message)
		require.NoError(t, err)

		compressed, _, err := dianoga.Compress(message, false)
		require.NoError(t, err)

		pad := int(compressed[0])
		assert.GreaterOrEqual(t, pad, 0)
		assert.LessOrEqual(t, pad, 7)
		assert.Zerof(t, (len(bits)+pad)%8, "%d bits + %d padding isn't byte-aligned", len(bits), pad)
		assert.Equal(t, (len(bits)+pad)/8, len(compressed)-1)
	}
}

func TestCompress__EmptyWithoutTransform(t *testing.T) {
	compressed, ring, err := dianoga.Compress([]byte{}, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, compressed)
	assert.Zero(t, ring.Len())
}

func TestCompress__SentinelCollision(t *testing.T) {
	message := []byte{'a', bwt.DefaultSentinel, 'b'}

	_, _, err := dianoga.Compress(message, true)
	assert.ErrorIs(t, err, dianoga.ErrSentinelCollision)

	// Without the transform the sentinel has no special meaning.
	compressed, ring, err := dianoga.Compress(message, false)
	require.NoError(t, err)
	decompressed, err := dianoga.Decompress(compressed, ring, false)
	require.NoError(t, err)
	assert.Equal(t, message, decompressed)
}

func TestCodec__CustomSentinel(t *testing.T) {
	codec := dianoga.New(dianoga.WithSentinel(0x00))
	assert.Equal(t, byte(0x00), codec.Sentinel())

	// Contains the default sentinel, but not the custom one.
	message := dtest.EveryByteExcept(0x00)

	compressed, ring, err := codec.Compress(message, true)
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed, ring, true)
	require.NoError(t, err)
	assert.Equal(t, message, decompressed)

	_, _, err = dianoga.Compress(message, true)
	assert.ErrorIs(t, err, dianoga.ErrSentinelCollision)
}

func TestDecompress__BadHeader(t *testing.T) {
	_, ring, err := dianoga.Compress([]byte("banana"), false)
	require.NoError(t, err)

	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"pad too big", []byte{8, 0xff}},
		{"pad without data", []byte{3}},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				_, err := dianoga.Decompress(test.Data, ring, false)
				assert.ErrorIs(t, err, dianoga.ErrFormat)
			},
		)
	}
}

func TestDecompress__NilRing(t *testing.T) {
	_, err := dianoga.Decompress([]byte{0}, nil, false)
	assert.ErrorIs(t, err, dianoga.ErrInvalidArgument)
}

func TestDecompress__Truncated(t *testing.T) {
	compressed, ring, err := dianoga.Compress([]byte("banana"), false)
	require.NoError(t, err)

	// "10 0 11 0 11 0" is nine bits, so seven bits of padding.
	require.Equal(t, []byte{7, 0x9b, 0x00}, compressed)

	// Keep only the first seven bits, which ends halfway through the second 'n'.
	truncated := []byte{1, compressed[1]}

	decompressed, err := dianoga.Decompress(truncated, ring, false)
	assert.ErrorIs(t, err, dianoga.ErrDecode)
	assert.Nil(t, decompressed)
}

func TestDecompress__CorruptionDetected(t *testing.T) {
	message := []byte("AAAAAAAAAAAAAAAAAAAA")
	compressed, ring, err := dianoga.Compress(message, false)
	require.NoError(t, err)
	require.Equal(t, 1, ring.Len())

	// The only code is "0", so any 1 bit in the payload is a table miss.
	for bit := 0; bit < (len(compressed)-1)*8-int(compressed[0]); bit++ {
		corrupted := append([]byte{}, compressed...)
		corrupted[1+bit/8] ^= 0x80 >> uint(bit%8)

		decompressed, err := dianoga.Decompress(corrupted, ring, false)
		assert.ErrorIsf(t, err, dianoga.ErrDecode, "flipping bit %d wasn't detected", bit)
		assert.Nil(t, decompressed)
	}
}

func TestDecompress__FlippedBitNeverSilent(t *testing.T) {
	message := []byte("the rain in spain falls mainly on the plain")
	compressed, ring, err := dianoga.Compress(message, false)
	require.NoError(t, err)
	dataBits := (len(compressed)-1)*8 - int(compressed[0])

	for bit := 0; bit < dataBits; bit++ {
		corrupted := append([]byte{}, compressed...)
		corrupted[1+bit/8] ^= 0x80 >> uint(bit%8)

		// Either the corruption is caught, or it decodes to something else.
		// Since the code is prefix-free it can never decode to the original.
		decompressed, err := dianoga.Decompress(corrupted, ring, false)
		if err != nil {
			assert.ErrorIsf(t, err, dianoga.ErrDecode, "wrong error for bit %d", bit)
		} else {
			assert.NotEqualf(t, message, decompressed, "flipping bit %d went unnoticed", bit)
		}
	}
}

func TestWithLogger(t *testing.T) {
	backend := logging.InitForTesting(logging.DEBUG)
	defer logging.Reset()

	logger := logging.MustGetLogger("codec_test")
	codec := dianoga.New(dianoga.WithLogger(logger))

	_, _, err := codec.Compress([]byte("banana"), true)
	require.NoError(t, err)

	var messages []string
	for node := backend.Head(); node != nil; node = node.Next() {
		if node.Record.Module == "codec_test" {
			messages = append(messages, node.Record.Message())
		}
	}
	require.Len(t, messages, 2, "expected one record per stage")
	assert.Equal(t, "bwt+mtf: 6 bytes in, 7 bytes out", messages[0])
}
