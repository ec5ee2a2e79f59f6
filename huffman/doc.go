// Package huffman builds per-message prefix codes and uses them to encode and
// decode byte sequences.
//
// A code is built bottom-up from the frequency of each byte in the message.
// Every distinct byte starts out as its own node in a min-priority queue keyed
// on its count. The two lowest-count nodes are repeatedly merged: every symbol
// in the first node popped gets a 0 prepended to its code, every symbol in the
// second gets a 1, and the merged node goes back into the queue with the sum of
// the two counts. When only one node is left, every symbol has its final code.
//
// Ties on count are broken by comparing the ordered list of symbols held by
// each node, e.g. (65) < (65, 66) < (66). Symbols are always bytes, so the
// resulting code is fully determined by the message. Nothing here depends on
// the iteration order of a map.
//
// A message with only one distinct byte would leave that byte with an empty
// code, since the merge loop never runs. That byte gets the code "0" instead.
//
// The inverse mapping from code to symbol is the [DecoderRing]. It has to be
// kept alongside the encoded bits to get the message back; the container
// package is one way of doing that.
//
// Codes come in two forms here. [Encode] and [Decode] work on ASCII bitstrings
// such as "0110", which is handy for inspection and small inputs.
// [EncodePacked] and [DecodePacked] work on bits packed eight to a byte, and
// are what the compressor uses.
package huffman
