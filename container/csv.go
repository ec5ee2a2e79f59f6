package container

import (
	"io"
	"strconv"

	"github.com/dargueta/dianoga/errors"
	"github.com/dargueta/dianoga/huffman"
	"github.com/gocarina/gocsv"
)

type ringRow struct {
	Code   string `csv:"code"`
	Symbol uint8  `csv:"symbol"`
	// Char is the symbol as a quoted Go string literal. Only for humans; it's
	// ignored when reading.
	Char string `csv:"char"`
}

// WriteRingCSV writes a decoder ring to `output` as CSV with a header row and
// one row per code, shortest codes first.
func WriteRingCSV(output io.Writer, ring *huffman.DecoderRing) error {
	entries := ring.Entries()
	rows := make([]*ringRow, len(entries))
	for i, entry := range entries {
		rows[i] = &ringRow{
			Code:   entry.Code,
			Symbol: entry.Symbol,
			Char:   strconv.QuoteToASCII(string([]byte{entry.Symbol})),
		}
	}

	if err := gocsv.Marshal(rows, output); err != nil {
		return errors.ErrIO.Wrap(err)
	}
	return nil
}

// ReadRingCSV reads a decoder ring written by [WriteRingCSV].
func ReadRingCSV(input io.Reader) (*huffman.DecoderRing, error) {
	var rows []*ringRow
	if err := gocsv.Unmarshal(input, &rows); err != nil {
		return nil, errors.ErrFormat.WithMessage("ring CSV").Wrap(err)
	}

	entries := make([]huffman.RingEntry, len(rows))
	for i, row := range rows {
		entries[i] = huffman.RingEntry{Code: row.Code, Symbol: row.Symbol}
	}
	return huffman.NewDecoderRing(entries)
}
