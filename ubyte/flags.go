package ubyte

import "github.com/ak80/uByte/bitmask"

// BitIsSet returns true if bit is set in value.
func BitIsSet(value int, bit bitmask.Bit) bool {
	return value&bit.Mask() == bit.Mask()
}

// SetFlag returns value with bit set when condition is true, and cleared
// otherwise.
func SetFlag(value int, bit bitmask.Bit, condition bool) int {
	if condition {
		return value | bit.Mask()
	}
	return value &^ bit.Mask()
}

// SetBit returns value with bit set.
func SetBit(value int, bit bitmask.Bit) int {
	return SetFlag(value, bit, true)
}

// StoreUnderMask stores source into target at the positions selected by
// mask.
//
// The mask is scanned from bit 0 to bit 7. Each time a mask bit is set, the
// target bit at that position takes the next source bit, starting with
// source bit 0. Target bits outside the mask are unchanged.
func StoreUnderMask(target, mask, source int) int {
	sourcePosition := 0
	for targetPosition := 0; targetPosition < bitmask.ByteBits; targetPosition++ {
		targetBit := bitmask.MustBitAt(targetPosition)
		if !BitIsSet(mask, targetBit) {
			continue
		}
		target = SetFlag(target, targetBit, BitIsSet(source, bitmask.MustBitAt(sourcePosition)))
		sourcePosition++
	}
	return target
}

// GetWithMask returns the bits of source selected by mask, left in place.
// All other bits of the result are zero. The bits are not packed down, so
// this is not the inverse of StoreUnderMask.
func GetWithMask(source, mask int) int {
	target := 0
	for position := 0; position < bitmask.ByteBits; position++ {
		bit := bitmask.MustBitAt(position)
		if BitIsSet(mask, bit) {
			target = SetFlag(target, bit, BitIsSet(source, bit))
		}
	}
	return target
}
