package huffman

import (
	"container/heap"
	"strings"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/dianoga/errors"
)

// Codebook is the encoding side of a Huffman code: it maps each symbol present
// in a message to its code, a string of '0' and '1' characters.
type Codebook struct {
	codes    [256]string
	alphabet bitmap.Bitmap
}

// BuildCodebook builds a Huffman code from a frequency table. It fails with
// [errors.ErrEmptyInput] if every count is zero.
func BuildCodebook(freq FrequencyTable) (*Codebook, error) {
	symbols := freq.Symbols()
	if len(symbols) == 0 {
		return nil, errors.ErrEmptyInput.WithMessage("frequency table is empty")
	}

	book := &Codebook{alphabet: freq.Alphabet()}
	if len(symbols) == 1 {
		book.codes[symbols[0]] = "0"
		return book, nil
	}

	queue := make(mergeQueue, 0, len(symbols))
	for _, symbol := range symbols {
		queue = append(queue, &mergeNode{count: freq[symbol], group: []byte{symbol}})
	}
	heap.Init(&queue)

	for queue.Len() > 1 {
		left := heap.Pop(&queue).(*mergeNode)
		right := heap.Pop(&queue).(*mergeNode)

		for _, symbol := range left.group {
			book.codes[symbol] = "0" + book.codes[symbol]
		}
		for _, symbol := range right.group {
			book.codes[symbol] = "1" + book.codes[symbol]
		}

		group := make([]byte, 0, len(left.group)+len(right.group))
		group = append(group, left.group...)
		group = append(group, right.group...)
		heap.Push(&queue, &mergeNode{count: left.count + right.count, group: group})
	}
	return book, nil
}

// Code returns the code for `symbol`, and false if the symbol isn't part of the
// code.
func (book *Codebook) Code(symbol byte) (string, bool) {
	if !book.alphabet.Get(int(symbol)) {
		return "", false
	}
	return book.codes[symbol], true
}

// Symbols returns every symbol that has a code, in ascending order.
func (book *Codebook) Symbols() []byte {
	symbols := make([]byte, 0, 256)
	for i := 0; i < 256; i++ {
		if book.alphabet.Get(i) {
			symbols = append(symbols, byte(i))
		}
	}
	return symbols
}

// IsPrefixFree returns true if no code in the book is a prefix of another.
func (book *Codebook) IsPrefixFree() bool {
	symbols := book.Symbols()
	for _, a := range symbols {
		for _, b := range symbols {
			if a != b && strings.HasPrefix(book.codes[b], book.codes[a]) {
				return false
			}
		}
	}
	return true
}

// DecoderRing returns the inverse of the codebook.
func (book *Codebook) DecoderRing() *DecoderRing {
	symbols := book.Symbols()
	entries := make([]RingEntry, len(symbols))
	for i, symbol := range symbols {
		entries[i] = RingEntry{Code: book.codes[symbol], Symbol: symbol}
	}

	// A codebook built by BuildCodebook is always a valid ring.
	ring, err := NewDecoderRing(entries)
	if err != nil {
		panic(err)
	}
	return ring
}
