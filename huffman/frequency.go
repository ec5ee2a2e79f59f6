package huffman

import (
	"github.com/boljen/go-bitmap"
)

// FrequencyTable gives the number of times each byte value occurs in a message.
type FrequencyTable [256]int

// CountFrequencies builds a new frequency table for `message`.
func CountFrequencies(message []byte) FrequencyTable {
	var freq FrequencyTable
	for _, symbol := range message {
		freq[symbol]++
	}
	return freq
}

// Alphabet returns a bitmap with bit N set if byte N occurs at least once.
func (freq *FrequencyTable) Alphabet() bitmap.Bitmap {
	present := bitmap.New(len(freq))
	for symbol, count := range freq {
		if count > 0 {
			present.Set(symbol, true)
		}
	}
	return present
}

// Symbols returns the bytes with a nonzero count, in ascending order.
func (freq *FrequencyTable) Symbols() []byte {
	symbols := make([]byte, 0, len(freq))
	for symbol, count := range freq {
		if count > 0 {
			symbols = append(symbols, byte(symbol))
		}
	}
	return symbols
}

// Total is the sum of all counts, i.e. the length of the message.
func (freq *FrequencyTable) Total() int {
	total := 0
	for _, count := range freq {
		total += count
	}
	return total
}
