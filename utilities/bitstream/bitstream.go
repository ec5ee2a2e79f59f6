// Package bitstream packs and unpacks individual bits into byte slices.
//
// Bits are stored most significant bit first: the first bit written becomes
// bit 7 of byte 0, the ninth becomes bit 7 of byte 1, and so on. The final byte
// is padded with zero bits on the low side.
package bitstream

import (
	"github.com/dargueta/dianoga/errors"
)

// PadLength returns the number of zero bits needed to round `nbits` up to a
// whole number of bytes. The result is always in [0, 7].
func PadLength(nbits int) int {
	return (8 - nbits%8) % 8
}

// Writer accumulates bits into a growing byte slice.
type Writer struct {
	buf    []byte
	nbits  int
	cindex uint8
}

// NewWriter creates a Writer with room for `sizeHint` bits before it has to
// grow its buffer.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, (sizeHint+7)/8)}
}

// WriteBit appends a single bit. Any nonzero value is written as 1.
func (w *Writer) WriteBit(bit uint8) {
	if w.cindex == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit != 0 {
		w.buf[len(w.buf)-1] |= (1 << 7) >> w.cindex
	}
	w.cindex = (w.cindex + 1) % 8
	w.nbits++
}

// WriteCode appends a code given as a string of '0' and '1' characters.
func (w *Writer) WriteCode(code string) error {
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '0':
			w.WriteBit(0)
		case '1':
			w.WriteBit(1)
		default:
			return errors.ErrInvalidArgument.WithMessage(
				"code contains a character that isn't '0' or '1'")
		}
	}
	return nil
}

// Len returns the number of bits written so far, not counting padding.
func (w *Writer) Len() int {
	return w.nbits
}

// Bytes returns the packed bits. The last byte is zero-padded. The returned
// slice aliases the writer's buffer until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reader reads bits back out of a packed byte slice.
type Reader struct {
	buf   []byte
	nbits int
	pos   int
}

// NewReader creates a Reader over the first `nbits` bits of `buf`. Any bits
// after that are treated as padding and never returned.
func NewReader(buf []byte, nbits int) (*Reader, error) {
	if nbits < 0 || nbits > len(buf)*8 {
		return nil, errors.ErrInvalidArgument.WithMessage(
			"bit count is outside the range of the buffer")
	}
	return &Reader{buf: buf, nbits: nbits}, nil
}

// ReadBit returns the next bit and true, or 0 and false if no bits remain.
func (r *Reader) ReadBit() (uint8, bool) {
	if r.pos >= r.nbits {
		return 0, false
	}
	c := r.buf[r.pos/8]
	i := uint8(r.pos % 8)
	r.pos++
	return (c & ((1 << 7) >> i)) >> (7 - i), true
}

// Remaining gives the number of unread bits.
func (r *Reader) Remaining() int {
	return r.nbits - r.pos
}

// Pack converts an ASCII bitstring into packed bytes, returning the packed data
// and the number of padding bits appended to the last byte.
func Pack(bits string) ([]byte, int, error) {
	w := NewWriter(len(bits))
	if err := w.WriteCode(bits); err != nil {
		return nil, 0, err
	}
	return w.Bytes(), PadLength(w.Len()), nil
}

// Unpack expands the first `nbits` bits of `buf` into an ASCII bitstring.
func Unpack(buf []byte, nbits int) (string, error) {
	r, err := NewReader(buf, nbits)
	if err != nil {
		return "", err
	}

	out := make([]byte, 0, nbits)
	for {
		bit, ok := r.ReadBit()
		if !ok {
			return string(out), nil
		}
		out = append(out, '0'+bit)
	}
}
