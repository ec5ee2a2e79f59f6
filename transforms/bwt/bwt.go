// Package bwt implements the Burrows-Wheeler transform and its inverse.
//
// The forward transform appends a sentinel byte to the message, sorts every
// cyclic rotation of the result, and returns the last byte of each rotation in
// sorted order. The rotations themselves are never built; only their starting
// offsets are sorted (see radix.go).
//
// The sentinel marks where the message ends so the inverse can find its way
// back to the start. It must not occur anywhere in the message.
//
// Rotations are compared as plain bytes. The sentinel sorts wherever its byte
// value puts it, not necessarily first.
package bwt

import (
	"bytes"
	"fmt"

	"github.com/dargueta/dianoga/errors"
)

// DefaultSentinel is the byte used to terminate the message if the caller
// doesn't pick a different one.
const DefaultSentinel byte = 17

// Transform returns the Burrows-Wheeler transform of `message`, which is one
// byte longer than the input. It fails with [errors.ErrSentinelCollision] if
// `sentinel` occurs in `message`.
func Transform(message []byte, sentinel byte) ([]byte, error) {
	if offset := bytes.IndexByte(message, sentinel); offset >= 0 {
		return nil, errors.ErrSentinelCollision.WithMessage(
			fmt.Sprintf("sentinel 0x%02x found at offset %d", sentinel, offset))
	}

	extended := make([]byte, len(message)+1)
	copy(extended, message)
	extended[len(message)] = sentinel

	// The sort emits rotations in descending order. Writing each one's
	// preceding byte from the back of the output puts the last column in
	// ascending order.
	size := len(extended)
	output := make([]byte, size)
	for i, start := range radixSortRotations(extended) {
		output[size-1-i] = extended[(start+size-1)%size]
	}
	return output, nil
}

// Inverse reverses [Transform], recovering the original message without the
// sentinel. It fails with [errors.ErrFormat] if `data` doesn't contain the
// sentinel exactly once, or isn't the output of a Burrows-Wheeler transform.
func Inverse(data []byte, sentinel byte) ([]byte, error) {
	size := len(data)
	if size == 0 {
		return nil, errors.ErrFormat.WithMessage("transformed data is empty")
	}

	var counts [256]int
	for _, value := range data {
		counts[value]++
	}
	if counts[sentinel] != 1 {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf(
				"sentinel 0x%02x must occur exactly once, found %d times",
				sentinel,
				counts[sentinel],
			),
		)
	}

	// firstOffsets[c] is the index in the sorted first column where the run of
	// byte c begins. The k-th occurrence of c in the first column is therefore
	// at firstOffsets[c] + k.
	var firstOffsets [256]int
	first := make([]byte, 0, size)
	for value, count := range counts {
		firstOffsets[value] = len(first)
		first = append(first, bytes.Repeat([]byte{byte(value)}, count)...)
	}

	// ranks[i] is how many times data[i] occurred in data[:i].
	var seen [256]int
	ranks := make([]int, size)
	for i, value := range data {
		ranks[i] = seen[value]
		seen[value]++
	}

	// Walk backwards from the row starting with the sentinel, filling in the
	// message from the end. recon[size-1] is the sentinel itself.
	recon := make([]byte, size)
	row := firstOffsets[sentinel]
	for step := 0; step < size; step++ {
		if step > 0 && first[row] == sentinel {
			return nil, errors.ErrFormat.WithMessage(
				fmt.Sprintf("cycle closed after %d of %d bytes", step, size))
		}
		recon[size-1-step] = first[row]
		row = firstOffsets[data[row]] + ranks[row]
	}

	return recon[:size-1], nil
}
