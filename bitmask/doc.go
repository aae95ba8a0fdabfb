package bitmask

/*

# Single bit masks for an unsigned byte

This package names the eight bits of an unsigned byte. Bit 0 is the right
most (least significant) bit and bit 7 the left most (most significant):

	index  7    6    5    4    3    2    1    0
	mask   0x80 0x40 0x20 0x10 0x08 0x04 0x02 0x01

The set is closed and fixed at compile time, so a Bit is just its mask value.
There is no state and nothing to initialize; every function is safe for
concurrent use.

## Indexing

BitAt maps an index to its Bit and rejects anything outside 0-7 with
ErrBitIndexRange. Indices that come from external data must go through
BitAt. MustBitAt is for callers that derive the index from a loop bounded
by ByteBits and treat a bad index as a programming error.

*/
