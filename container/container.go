package container

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/dargueta/dianoga/errors"
	"github.com/dargueta/dianoga/huffman"
	"github.com/dargueta/dianoga/utilities/bitstream"
	"github.com/noxer/bytewriter"
)

// Magic is the signature at the start of every container.
var Magic = [4]byte{'D', 'N', 'G', 'A'}

// Version is the only format version this package reads and writes.
const Version = 1

const (
	FlagTransformed = 1 << iota
	FlagBitString
)

const knownFlags = FlagTransformed | FlagBitString

// Archive is the decoded contents of a container.
type Archive struct {
	// Ring is the decoder ring for the payload. Must not be nil.
	Ring *huffman.DecoderRing
	// Payload is either the compressed bytes, pad byte included, or an ASCII
	// bitstring if BitString is true.
	Payload []byte
	// Transformed is true if the payload was compressed with the transform
	// stage enabled.
	Transformed bool
	// BitString is true if the payload is an ASCII bitstring.
	BitString bool
	// Sentinel is the sentinel byte used by the transform. It's stored even if
	// Transformed is false, but is meaningless in that case.
	Sentinel byte
}

type rawHeader struct {
	Magic     [4]byte
	Version   uint8
	Flags     uint8
	Sentinel  uint8
	RingCount uint16
}

const rawHeaderSize = 9

func (archive *Archive) flags() uint8 {
	var flags uint8
	if archive.Transformed {
		flags |= FlagTransformed
	}
	if archive.BitString {
		flags |= FlagBitString
	}
	return flags
}

func (archive *Archive) validate() error {
	if archive.Ring == nil {
		return errors.ErrInvalidArgument.WithMessage("archive has no decoder ring")
	}
	if archive.Transformed && archive.BitString {
		return errors.ErrInvalidArgument.WithMessage(
			"a bitstring payload can't have the transform applied")
	}
	for _, entry := range archive.Ring.Entries() {
		if len(entry.Code) > math.MaxUint8 {
			return errors.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("code for symbol %d is %d bits long", entry.Symbol, len(entry.Code)))
		}
	}
	return nil
}

// Size returns the number of bytes [Marshal] will produce for this archive.
func (archive *Archive) Size() int {
	size := rawHeaderSize + 8 + len(archive.Payload)
	for _, entry := range archive.Ring.Entries() {
		size += 2 + (len(entry.Code)+7)/8
	}
	return size
}

// Marshal serializes an archive into a new byte slice.
func Marshal(archive *Archive) ([]byte, error) {
	if err := archive.validate(); err != nil {
		return nil, err
	}

	output := make([]byte, archive.Size())
	writer := bytewriter.New(output)

	header := rawHeader{
		Magic:     Magic,
		Version:   Version,
		Flags:     archive.flags(),
		Sentinel:  archive.Sentinel,
		RingCount: uint16(archive.Ring.Len()),
	}
	if err := binary.Write(writer, binary.BigEndian, &header); err != nil {
		return nil, errors.ErrIO.Wrap(err)
	}

	for _, entry := range archive.Ring.Entries() {
		packed, _, err := bitstream.Pack(entry.Code)
		if err != nil {
			return nil, err
		}

		_, err = writer.Write([]byte{entry.Symbol, byte(len(entry.Code))})
		if err != nil {
			return nil, errors.ErrIO.Wrap(err)
		}
		_, err = writer.Write(packed)
		if err != nil {
			return nil, errors.ErrIO.Wrap(err)
		}
	}

	err := binary.Write(writer, binary.BigEndian, uint64(len(archive.Payload)))
	if err != nil {
		return nil, errors.ErrIO.Wrap(err)
	}
	_, err = writer.Write(archive.Payload)
	if err != nil {
		return nil, errors.ErrIO.Wrap(err)
	}
	return output, nil
}

// Write serializes an archive to `output`. The returned int64 gives the number
// of bytes written, and is only valid if no error occurred.
func Write(output io.Writer, archive *Archive) (int64, error) {
	data, err := Marshal(archive)
	if err != nil {
		return 0, err
	}

	n, err := output.Write(data)
	if err != nil {
		return int64(n), errors.ErrIO.Wrap(err)
	}
	return int64(n), nil
}

// Read parses a container from `input`, which must contain exactly one
// container and nothing else. Anything that doesn't parse fails with
// [errors.ErrFormat].
func Read(input io.Reader) (*Archive, error) {
	source := bufio.NewReader(input)

	var header rawHeader
	if err := binary.Read(source, binary.BigEndian, &header); err != nil {
		return nil, errors.ErrFormat.WithMessage("header").Wrap(err)
	}
	if header.Magic != Magic {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf("bad signature %q", header.Magic[:]))
	}
	if header.Version != Version {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf("unsupported version %d", header.Version))
	}
	if header.Flags&^knownFlags != 0 {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf("unknown flags 0x%02x", header.Flags&^knownFlags))
	}
	if header.Flags == knownFlags {
		return nil, errors.ErrFormat.WithMessage(
			"transform and bitstring flags are mutually exclusive")
	}

	ring, err := readRing(source, int(header.RingCount))
	if err != nil {
		return nil, err
	}

	payload, err := readPayload(source)
	if err != nil {
		return nil, err
	}

	if _, err := source.ReadByte(); err != io.EOF {
		return nil, errors.ErrFormat.WithMessage("unexpected data after the payload")
	}

	archive := &Archive{
		Ring:        ring,
		Payload:     payload,
		Transformed: header.Flags&FlagTransformed != 0,
		BitString:   header.Flags&FlagBitString != 0,
		Sentinel:    header.Sentinel,
	}

	if archive.BitString {
		for i, char := range payload {
			if char != '0' && char != '1' {
				return nil, errors.ErrFormat.WithMessage(
					fmt.Sprintf("bitstring payload has %q at offset %d", char, i))
			}
		}
	}
	return archive, nil
}

func readRing(source io.Reader, count int) (*huffman.DecoderRing, error) {
	if count > 256 {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf("ring has %d entries, at most 256 allowed", count))
	}

	entries := make([]huffman.RingEntry, count)
	var entryHeader [2]byte
	for i := range entries {
		if _, err := io.ReadFull(source, entryHeader[:]); err != nil {
			return nil, errors.ErrFormat.WithMessage(fmt.Sprintf("ring entry %d", i)).Wrap(err)
		}

		codeLength := int(entryHeader[1])
		if codeLength == 0 {
			return nil, errors.ErrFormat.WithMessage(
				fmt.Sprintf("ring entry %d has an empty code", i))
		}

		packed := make([]byte, (codeLength+7)/8)
		if _, err := io.ReadFull(source, packed); err != nil {
			return nil, errors.ErrFormat.WithMessage(fmt.Sprintf("ring entry %d", i)).Wrap(err)
		}

		code, err := bitstream.Unpack(packed, codeLength)
		if err != nil {
			return nil, errors.ErrFormat.Wrap(err)
		}
		entries[i] = huffman.RingEntry{Code: code, Symbol: entryHeader[0]}
	}

	ring, err := huffman.NewDecoderRing(entries)
	if err != nil {
		return nil, err
	}
	return ring, nil
}

func readPayload(source io.Reader) ([]byte, error) {
	var length uint64
	if err := binary.Read(source, binary.BigEndian, &length); err != nil {
		return nil, errors.ErrFormat.WithMessage("payload length").Wrap(err)
	}
	if length > math.MaxInt64 {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf("payload length %d is too large", length))
	}

	// Don't trust the length enough to allocate it all up front.
	payload, err := io.ReadAll(io.LimitReader(source, int64(length)))
	if err != nil {
		return nil, errors.ErrIO.Wrap(err)
	}
	if uint64(len(payload)) != length {
		return nil, errors.ErrFormat.WithMessage(
			fmt.Sprintf("payload should be %d bytes, got %d", length, len(payload)))
	}
	return payload, nil
}
