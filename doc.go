// Package dianoga compresses byte strings with the Burrows-Wheeler transform,
// move-to-front recoding, and Huffman coding, in that order.
//
// Compression yields two things that must both be kept to get the original
// data back: the compressed bytes, and the [huffman.DecoderRing] that maps the
// Huffman codes back to bytes. How the two are stored together is up to the
// caller; the container package provides one file format for it.
//
// The compressed bytes look like this:
//
//	+-----+----------------------------------+
//	| pad | Huffman-coded bits, MSB first    |
//	+-----+----------------------------------+
//
// The first byte gives the number of zero bits (0-7) appended to the end of
// the bitstream to fill out the last byte.
//
// The transform stage is optional. It clusters repeated substrings together,
// which helps a lot on text and very little on data that's already compressed
// or otherwise random. It also requires one byte value, the sentinel, to never
// appear in the input. The default sentinel is 0x11 (see [WithSentinel]); data
// containing it is rejected with [ErrSentinelCollision] rather than silently
// corrupted. With the transform disabled, any byte string can be compressed.
//
// Everything happens in memory, one stage at a time. Each stage allocates its
// own output and never modifies its input.
package dianoga
