package dianoga

import (
	"fmt"

	"github.com/dargueta/dianoga/huffman"
	"github.com/dargueta/dianoga/transforms/bwt"
	"github.com/dargueta/dianoga/transforms/mtf"
	"github.com/dargueta/dianoga/utilities/bitstream"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("dianoga")

// Codec runs the compression pipeline with a fixed configuration. It holds no
// state between calls and is safe for concurrent use.
type Codec struct {
	sentinel byte
	logger   *logging.Logger
}

// New creates a [Codec]. With no options, it uses [bwt.DefaultSentinel] and
// logs to the "dianoga" logger.
func New(options ...Option) *Codec {
	cfg := defaultConfig()
	for _, option := range options {
		option(&cfg)
	}
	return &Codec{sentinel: cfg.sentinel, logger: cfg.logger}
}

var defaultCodec = New()

// Sentinel returns the byte this codec uses to terminate messages in the
// Burrows-Wheeler transform.
func (codec *Codec) Sentinel() byte {
	return codec.sentinel
}

// Compress compresses `message` and returns the compressed bytes along with
// the decoder ring needed to decompress them.
//
// If `useTransform` is true, the message is run through the Burrows-Wheeler
// transform and move-to-front recoding before Huffman coding. In that case the
// message must not contain the codec's sentinel byte, or this fails with
// [ErrSentinelCollision].
//
// An empty message with `useTransform` false compresses to a single zero byte
// and an empty ring.
func (codec *Codec) Compress(message []byte, useTransform bool) ([]byte, *huffman.DecoderRing, error) {
	source := message
	if useTransform {
		transformed, err := bwt.Transform(message, codec.sentinel)
		if err != nil {
			return nil, nil, err
		}
		source = mtf.Encode(transformed)
		codec.logger.Debugf("bwt+mtf: %d bytes in, %d bytes out", len(message), len(source))
	}

	if len(source) == 0 {
		ring, err := huffman.NewDecoderRing(nil)
		if err != nil {
			return nil, nil, err
		}
		return []byte{0}, ring, nil
	}

	packed, nbits, ring, err := huffman.EncodePacked(source)
	if err != nil {
		return nil, nil, err
	}

	pad := bitstream.PadLength(nbits)
	compressed := make([]byte, len(packed)+1)
	compressed[0] = byte(pad)
	copy(compressed[1:], packed)

	codec.logger.Debugf(
		"huffman: %d symbols, %d codes, %d bits + %d padding",
		len(source),
		ring.Len(),
		nbits,
		pad,
	)
	return compressed, ring, nil
}

// Decompress reverses [Codec.Compress]. `useTransform` must match the value
// used for compression.
//
// This fails with [ErrFormat] if the pad byte is missing or invalid, and with
// [ErrDecode] if the bits don't decode cleanly with `ring`. If the transform is
// enabled, it also fails with [ErrFormat] if the decoded data isn't a valid
// transform output for this codec's sentinel.
func (codec *Codec) Decompress(compressed []byte, ring *huffman.DecoderRing, useTransform bool) ([]byte, error) {
	if ring == nil {
		return nil, ErrInvalidArgument.WithMessage("decoder ring is required")
	}
	if len(compressed) == 0 {
		return nil, ErrFormat.WithMessage("compressed data is missing the padding byte")
	}

	pad := int(compressed[0])
	if pad > 7 {
		return nil, ErrFormat.WithMessage(fmt.Sprintf("padding must be in [0, 7], got %d", pad))
	}

	packed := compressed[1:]
	nbits := len(packed)*8 - pad
	if nbits < 0 {
		return nil, ErrFormat.WithMessage(
			fmt.Sprintf("%d bits of padding but only %d bits of data", pad, len(packed)*8))
	}

	decoded, err := huffman.DecodePacked(packed, nbits, ring)
	if err != nil {
		return nil, err
	}
	codec.logger.Debugf("huffman: %d bits decoded to %d symbols", nbits, len(decoded))

	if !useTransform {
		return decoded, nil
	}

	restored, err := bwt.Inverse(mtf.Decode(decoded), codec.sentinel)
	if err != nil {
		return nil, err
	}
	codec.logger.Debugf("ibwt+imtf: %d bytes in, %d bytes out", len(decoded), len(restored))
	return restored, nil
}

// Encode Huffman-codes `message` without any transform, returning the bits as
// an ASCII string of '0' and '1' characters.
func (codec *Codec) Encode(message []byte) (string, *huffman.DecoderRing, error) {
	bits, ring, err := huffman.Encode(message)
	if err != nil {
		return "", nil, err
	}
	codec.logger.Debugf("encoded %d bytes to %d bits with %d codes", len(message), len(bits), ring.Len())
	return bits, ring, nil
}

// Decode reverses [Codec.Encode].
func (codec *Codec) Decode(bits string, ring *huffman.DecoderRing) ([]byte, error) {
	if ring == nil {
		return nil, ErrInvalidArgument.WithMessage("decoder ring is required")
	}
	return huffman.Decode(bits, ring)
}

// Compress calls [Codec.Compress] on a codec with the default settings.
func Compress(message []byte, useTransform bool) ([]byte, *huffman.DecoderRing, error) {
	return defaultCodec.Compress(message, useTransform)
}

// Decompress calls [Codec.Decompress] on a codec with the default settings.
func Decompress(compressed []byte, ring *huffman.DecoderRing, useTransform bool) ([]byte, error) {
	return defaultCodec.Decompress(compressed, ring, useTransform)
}
