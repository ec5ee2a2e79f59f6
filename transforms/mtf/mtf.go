// Package mtf implements move-to-front recoding of byte sequences.
//
// Both directions keep a list of all 256 byte values, initially in ascending
// order. Each byte processed is replaced by its current index in the list (or
// vice versa when decoding) and then moved to the front. Runs of the same byte
// turn into runs of zeros, and recently-seen bytes get small ranks, which is
// what makes the output of the Burrows-Wheeler transform compress well.
package mtf

import (
	"bytes"
)

type recencyList [256]byte

func newRecencyList() recencyList {
	var list recencyList
	for i := range list {
		list[i] = byte(i)
	}
	return list
}

// moveToFront moves the entry at `rank` to index 0, shifting everything before
// it back by one, and returns the value that was moved.
func (list *recencyList) moveToFront(rank int) byte {
	value := list[rank]
	copy(list[1:rank+1], list[:rank])
	list[0] = value
	return value
}

// Encode replaces each byte in `message` with its rank in the recency list. The
// returned slice is always the same length as the input.
func Encode(message []byte) []byte {
	list := newRecencyList()
	ranks := make([]byte, len(message))

	for i, value := range message {
		rank := bytes.IndexByte(list[:], value)
		ranks[i] = byte(rank)
		list.moveToFront(rank)
	}
	return ranks
}

// Decode reverses [Encode]: Decode(Encode(x)) == x for every byte slice x.
func Decode(ranks []byte) []byte {
	list := newRecencyList()
	message := make([]byte, len(ranks))

	for i, rank := range ranks {
		message[i] = list.moveToFront(int(rank))
	}
	return message
}
