package huffman

import (
	"fmt"
	"sort"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/dianoga/errors"
)

// RingEntry maps one code to the symbol it decodes to.
type RingEntry struct {
	Code   string
	Symbol byte
}

// DecoderRing is the decoding side of a Huffman code, mapping each code to its
// symbol. It's immutable once created.
type DecoderRing struct {
	// entries is sorted by code length, then lexicographically by code.
	entries []RingEntry
	root    *ringNode
}

// ringNode is a node in the binary trie used for decoding. A node is either a
// leaf holding a symbol or an interior node with zero, one, or two children.
type ringNode struct {
	next   [2]*ringNode
	isLeaf bool
	symbol byte
}

// NewDecoderRing creates a decoder ring from a list of code/symbol pairs in any
// order. It fails with [errors.ErrFormat] if a code is empty or has characters
// other than '0' and '1', if a symbol appears more than once, or if one code is
// a prefix of another.
//
// An empty list is allowed; the resulting ring can only decode an empty
// bitstream.
func NewDecoderRing(entries []RingEntry) (*DecoderRing, error) {
	if len(entries) > 256 {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf("ring has %d entries, at most 256 allowed", len(entries)))
	}

	sorted := make([]RingEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(
		sorted,
		func(i, j int) bool {
			if len(sorted[i].Code) != len(sorted[j].Code) {
				return len(sorted[i].Code) < len(sorted[j].Code)
			}
			return sorted[i].Code < sorted[j].Code
		},
	)

	seen := bitmap.New(256)
	root := &ringNode{}
	for _, entry := range sorted {
		if seen.Get(int(entry.Symbol)) {
			return nil, errors.ErrFormat.WithMessage(
				fmt.Sprintf("symbol %d appears more than once", entry.Symbol))
		}
		seen.Set(int(entry.Symbol), true)

		if err := root.insert(entry); err != nil {
			return nil, err
		}
	}

	return &DecoderRing{entries: sorted, root: root}, nil
}

func (root *ringNode) insert(entry RingEntry) error {
	if entry.Code == "" {
		return errors.ErrFormat.WithMessage(
			fmt.Sprintf("symbol %d has an empty code", entry.Symbol))
	}

	current := root
	for i := 0; i < len(entry.Code); i++ {
		var bit int
		switch entry.Code[i] {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return errors.ErrFormat.WithMessage(
				fmt.Sprintf("code %q for symbol %d isn't a bitstring", entry.Code, entry.Symbol))
		}

		if current.isLeaf {
			return errors.ErrFormat.WithMessage(
				fmt.Sprintf("code %q has another code as its prefix", entry.Code))
		}
		if current.next[bit] == nil {
			current.next[bit] = &ringNode{}
		}
		current = current.next[bit]
	}

	if current.isLeaf || current.next[0] != nil || current.next[1] != nil {
		return errors.ErrFormat.WithMessage(
			fmt.Sprintf("code %q is a prefix of another code or a duplicate", entry.Code))
	}
	current.isLeaf = true
	current.symbol = entry.Symbol
	return nil
}

// Len returns the number of codes in the ring.
func (ring *DecoderRing) Len() int {
	return len(ring.entries)
}

// Entries returns a copy of the ring's entries, ordered by code length and then
// by code.
func (ring *DecoderRing) Entries() []RingEntry {
	entries := make([]RingEntry, len(ring.entries))
	copy(entries, ring.entries)
	return entries
}

// Lookup returns the symbol for an exact code, and false if no code matches.
func (ring *DecoderRing) Lookup(code string) (byte, bool) {
	current := ring.root
	for i := 0; i < len(code) && current != nil; i++ {
		switch code[i] {
		case '0':
			current = current.next[0]
		case '1':
			current = current.next[1]
		default:
			return 0, false
		}
	}

	if current == nil || !current.isLeaf {
		return 0, false
	}
	return current.symbol, true
}

// Codebook returns the encoding side of the code held by this ring.
func (ring *DecoderRing) Codebook() *Codebook {
	book := &Codebook{alphabet: bitmap.New(256)}
	for _, entry := range ring.entries {
		book.codes[entry.Symbol] = entry.Code
		book.alphabet.Set(int(entry.Symbol), true)
	}
	return book
}

// Equal returns true if both rings hold exactly the same codes.
func (ring *DecoderRing) Equal(other *DecoderRing) bool {
	if ring.Len() != other.Len() {
		return false
	}
	for i := range ring.entries {
		if ring.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// decoder is the state of a single greedy decoding pass over a ring's trie.
type decoder struct {
	ring    *DecoderRing
	current *ringNode
	output  []byte
	nbits   int
}

func newDecoder(ring *DecoderRing, sizeHint int) *decoder {
	return &decoder{
		ring:    ring,
		current: ring.root,
		output:  make([]byte, 0, sizeHint),
	}
}

func (dec *decoder) feed(bit uint8) error {
	next := dec.current.next[bit&1]
	if next == nil {
		return errors.ErrDecode.WithMessage(
			fmt.Sprintf("no code matches the bits ending at bit %d", dec.nbits))
	}
	dec.nbits++

	if next.isLeaf {
		dec.output = append(dec.output, next.symbol)
		dec.current = dec.ring.root
	} else {
		dec.current = next
	}
	return nil
}

func (dec *decoder) finish() ([]byte, error) {
	if dec.current != dec.ring.root {
		return nil, errors.ErrDecode.WithMessage("bitstream ends in the middle of a code")
	}
	return dec.output, nil
}
