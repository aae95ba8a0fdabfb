package ubyte

/*

# Unsigned byte values held in wider integers

Byte oriented protocols are usually described in terms of unsigned bytes,
double bytes and quad bytes, and bit flags packed into them. This package
works with those values held in an int, so a byte is simply an int in the
range 0-255 and arithmetic never wraps unexpectedly.

It mirrors the `bloom` and `mmr` style:

- small, composable, stateless functions
- explicit big endian layouts
- a burden of knowledge on the caller

That last point matters. CombineTwoBytes and CombineFourBytes do not check
that their arguments are bytes, and the Format functions only guarantee a
minimum number of digits. Values read from outside should be checked with
IsUnsignedByte / IsUnsignedByteArray first.

## Signed and unsigned bytes

A signed byte (int8) and an unsigned byte are two readings of the same 8
bits. ToSignedByte and ToUnsignedByte re-interpret the low 8 bits; they
never clamp:

	ToUnsignedByte(-1)  == 255
	ToUnsignedByte(256) == 0
	ToSignedByte(128)   == -128
	ToSignedByte(255)   == -1

## Text formats

	byte         0xff
	double byte  0x00ff
	quad byte    0x000000ff
	byte array   { 0x01, 0x02, 0xff }   (empty: { })

ParseUnsignedByteArray reads the array format back, and is relaxed about
it: braces are optional, tokens may be separated by any run of commas and
white space, and the 0x prefix is optional.

## Bits under a mask

StoreUnderMask and GetWithMask are deliberately not inverses.

StoreUnderMask scatters: the low bits of the source are written, one after
the other, into the positions selected by the mask, scanning from bit 0
upwards. With mask 0b00001100, source bit 0 lands in target bit 2 and
source bit 1 lands in target bit 3.

GetWithMask gathers in place: the bits of the source under the mask are
kept at their own positions and everything else is cleared. With mask
0b00001100 the result is source & 0b00001100, not shifted down.

Callers exist for both behaviours, so neither is "fixed" to match the other.

*/
