package ubyte

import "encoding/binary"

// ToUnsignedByte returns the low-order byte of value. All the higher bits are
// discarded, so the result is always in the range 0-255.
func ToUnsignedByte(value int) int {
	return value & ByteMask
}

// IsUnsignedByte returns true if value is in the range 0-255. Unlike
// ToUnsignedByte, nothing is masked.
func IsUnsignedByte(value int) bool {
	return value >= 0x00 && value <= 0xff
}

// ToSignedByte re-interprets the low-order byte of value as a two's
// complement signed byte, e.g. 128 -> -128 and 255 -> -1.
func ToSignedByte(value int) int8 {
	return int8(value)
}

// GetLowByteFromDoubleByte returns the least significant byte of value
// treated as a double byte.
func GetLowByteFromDoubleByte(value int) int {
	return value & ByteMask
}

// GetHighByteFromDoubleByte returns bits 8-15 of value treated as a double
// byte. The shift is logical, negative values are not sign extended.
func GetHighByteFromDoubleByte(value int) int {
	return int(uint(value)>>ByteLength) & ByteMask
}

// CombineTwoBytes builds the big endian double byte high:low.
//
// The arguments are not validated, the caller must pass unsigned bytes.
func CombineTwoBytes(high, low int) int {
	return (high << ByteLength) + low
}

// GetBytesFromQuadByte splits the low 32 bits of value into four unsigned
// bytes, most significant first.
func GetBytesFromQuadByte(value int64) [4]int {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(value))
	return [4]int{int(b[0]), int(b[1]), int(b[2]), int(b[3])}
}

// CombineFourBytes builds the big endian quad byte b3:b2:b1:b0, b3 being
// the most significant.
//
// The arguments are not validated, the caller must pass unsigned bytes.
func CombineFourBytes(b3, b2, b1, b0 int) int64 {
	return int64(b3)<<(3*ByteLength) +
		int64(b2)<<(2*ByteLength) +
		int64(b1)<<ByteLength +
		int64(b0)
}
