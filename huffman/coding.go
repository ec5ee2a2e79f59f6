package huffman

import (
	"strings"

	"github.com/dargueta/dianoga/errors"
	"github.com/dargueta/dianoga/utilities/bitstream"
)

// Encode builds a Huffman code for `message` and returns the message encoded as
// an ASCII bitstring, along with the decoder ring needed to decode it. It fails
// with [errors.ErrEmptyInput] if the message is empty.
func Encode(message []byte) (string, *DecoderRing, error) {
	book, err := BuildCodebook(CountFrequencies(message))
	if err != nil {
		return "", nil, err
	}

	var builder strings.Builder
	for _, symbol := range message {
		builder.WriteString(book.codes[symbol])
	}
	return builder.String(), book.DecoderRing(), nil
}

// Decode turns an ASCII bitstring back into the original symbols.
//
// If the bitstring ends partway through a code, or contains a run of bits that
// doesn't match any code in the ring, this fails with [errors.ErrDecode] and no
// partial output is returned.
func Decode(bits string, ring *DecoderRing) ([]byte, error) {
	dec := newDecoder(ring, len(bits)/8)
	for i := 0; i < len(bits); i++ {
		var bit uint8
		switch bits[i] {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return nil, errors.ErrDecode.WithMessage("bitstring contains a character that isn't '0' or '1'")
		}

		if err := dec.feed(bit); err != nil {
			return nil, err
		}
	}
	return dec.finish()
}

// EncodePacked is the same as [Encode], except the bits are packed eight to a
// byte, most significant bit first. It returns the packed bits and the number
// of bits actually used; the rest of the last byte is zero.
func EncodePacked(message []byte) ([]byte, int, *DecoderRing, error) {
	book, err := BuildCodebook(CountFrequencies(message))
	if err != nil {
		return nil, 0, nil, err
	}

	writer := bitstream.NewWriter(len(message) * 4)
	for _, symbol := range message {
		if err := writer.WriteCode(book.codes[symbol]); err != nil {
			return nil, 0, nil, err
		}
	}
	return writer.Bytes(), writer.Len(), book.DecoderRing(), nil
}

// DecodePacked decodes the first `nbits` bits of `packed` using `ring`. It
// fails the same way [Decode] does.
func DecodePacked(packed []byte, nbits int, ring *DecoderRing) ([]byte, error) {
	reader, err := bitstream.NewReader(packed, nbits)
	if err != nil {
		return nil, errors.ErrDecode.Wrap(err)
	}

	dec := newDecoder(ring, nbits/2)
	for {
		bit, ok := reader.ReadBit()
		if !ok {
			break
		}
		if err := dec.feed(bit); err != nil {
			return nil, err
		}
	}
	return dec.finish()
}
