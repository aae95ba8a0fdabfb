package ubyte

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ToIso88591String decodes values as ISO-8859-1 text, one character per
// element. Only the low-order byte of each element is used.
func ToIso88591String(values []int) string {
	var sb strings.Builder
	sb.Grow(len(values))
	for _, v := range values {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(byte(v)))
	}
	return sb.String()
}

// FromIso88591String encodes s as ISO-8859-1, one unsigned byte per
// character. Characters above U+00FF, and invalid UTF-8, fail with
// ErrNotIso88591.
func FromIso88591String(s string) ([]int, error) {
	values := make([]int, 0, len(s))
	for offset, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrNotIso88591, r, offset)
		}
		values = append(values, int(b))
	}
	return values, nil
}
