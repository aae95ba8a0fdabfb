package ubyte

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FormatByteAsHex formats the low-order byte of value as 0x followed by two
// lower case hex digits.
func FormatByteAsHex(value int) string {
	return fmt.Sprintf(HexPrefix+"%02x", ToUnsignedByte(value))
}

// FormatDoubleByteAsHex formats the low 16 bits of value as 0x followed by
// four lower case hex digits.
func FormatDoubleByteAsHex(value int) string {
	return fmt.Sprintf(HexPrefix+"%04x", value&DoubleByteMask)
}

// FormatQuadByteAsHex formats value as 0x followed by at least eight lower
// case hex digits. Nothing is masked: a value wider than 32 bits gets more
// digits, and a negative value prints its 64 bit two's complement.
func FormatQuadByteAsHex(value int64) string {
	return fmt.Sprintf(HexPrefix+"%08x", uint64(value))
}

// FormatUnsignedByteArray formats values the way a C array initializer
// would be written, e.g. { 0x00, 0x01 }. Each element is formatted with
// FormatByteAsHex. The empty array is "{ }".
func FormatUnsignedByteArray(values []int) string {
	if len(values) == 0 {
		return strings.TrimSpace(ArrayStart) + ArrayEnd
	}

	var sb strings.Builder
	sb.WriteString(ArrayStart)
	for i, v := range values {
		if i > 0 {
			sb.WriteString(ArraySeparator)
		}
		sb.WriteString(FormatByteAsHex(v))
	}
	sb.WriteString(ArrayEnd)
	return sb.String()
}

// ParseUnsignedByteArray reads an array written by FormatUnsignedByteArray.
//
// The surrounding braces are optional, tokens are separated by any run of
// commas and white space, and the 0x prefix of each token is optional. An
// empty body gives an empty, non nil, slice. A token that is not a base 16
// number fails the whole parse with ErrNumberFormat.
func ParseUnsignedByteArray(text string) ([]int, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimPrefix(body, "{")
	body = strings.TrimSuffix(body, "}")

	tokens := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]int, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.ParseInt(strings.ReplaceAll(token, HexPrefix, ""), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNumberFormat, token, err)
		}
		values = append(values, int(v))
	}
	return values, nil
}
