package bitmask

import (
	"fmt"
	"math/bits"
)

var all = [ByteBits]Bit{Bit0, Bit1, Bit2, Bit3, Bit4, Bit5, Bit6, Bit7}

// BitAt returns the bit for the given index, i.e. BitAt(1) returns Bit1.
func BitAt(index int) (Bit, error) {
	if index < 0 || index >= ByteBits {
		return 0, fmt.Errorf("%w: got %d", ErrBitIndexRange, index)
	}
	return all[index], nil
}

// MustBitAt is BitAt for indices the caller has already bounded. It panics
// with the BitAt error otherwise.
func MustBitAt(index int) Bit {
	b, err := BitAt(index)
	if err != nil {
		panic(err)
	}
	return b
}

// All returns the eight bits in ascending order, Bit0 first.
func All() [ByteBits]Bit { return all }

// Mask returns the mask value as an int.
func (b Bit) Mask() int { return int(b) }

// Index returns the position of the bit, 0 for Bit0 through 7 for Bit7.
func (b Bit) Index() int { return bits.TrailingZeros8(uint8(b)) }

func (b Bit) String() string {
	if bits.OnesCount8(uint8(b)) != 1 {
		return fmt.Sprintf("Bit(0x%02x)", uint8(b))
	}
	return fmt.Sprintf("BIT_%d", b.Index())
}
