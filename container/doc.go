// Package container stores a compressed payload together with the decoder
// ring needed to decompress it.
//
// All integers are big-endian. The layout is:
//
//	offset  size  field
//	0       4     magic "DNGA"
//	4       1     version, currently 1
//	5       1     flags
//	6       1     sentinel used by the transform
//	7       2     number of ring entries, N (0-256)
//	9       ...   N ring entries
//	...     8     payload length, P
//	...     P     payload
//
// Flag bit 0 is set if the payload was compressed with the Burrows-Wheeler and
// move-to-front transforms enabled. Bit 1 is set if the payload is an ASCII
// bitstring of '0' and '1' characters (the encode-only mode) rather than
// packed bits. The two are mutually exclusive. Other bits must be zero.
//
// Each ring entry is the symbol (1 byte), the length of its code in bits (1
// byte, 1-255), and then the code itself packed most significant bit first
// into as few bytes as will hold it.
//
// Rings can also be exported to and imported from CSV with [WriteRingCSV] and
// [ReadRingCSV], which is mostly useful for looking at them.
package container
