package ubyte

import "errors"

const (
	ByteMask       = 0xff
	DoubleByteMask = 0xffff
	QuadByteMask   = 0xffffffff

	// ByteLength is the number of bits in a byte, and the shift between
	// adjacent bytes of a double or quad byte.
	ByteLength = 8

	HexPrefix = "0x"

	ArrayStart     = "{ "
	ArrayEnd       = " }"
	ArraySeparator = ", "
)

var (
	ErrNumberFormat = errors.New("ubyte: invalid hex number")
	ErrNotIso88591  = errors.New("ubyte: character not representable in ISO-8859-1")
)
