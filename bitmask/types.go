package bitmask

import "errors"

const (
	// ByteBits is the number of bits, and so the number of masks, in a byte.
	ByteBits = 8
)

// Bit is the mask value of a single bit in an unsigned byte.
type Bit uint8

const (
	Bit0 Bit = 1 << iota
	Bit1
	Bit2
	Bit3
	Bit4
	Bit5
	Bit6
	Bit7
)

var (
	ErrBitIndexRange = errors.New("bitmask: bit index must be in the range 0-7")
)
