package ubyte

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatByteAsHex(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  string
	}{
		{"0", 0, "0x00"},
		{"1", 1, "0x01"},
		{"15", 15, "0x0f"},
		{"16", 16, "0x10"},
		{"171", 0xab, "0xab"},
		{"255", 255, "0xff"},
		{"256 wraps", 256, "0x00"},
		{"-1 wraps", -1, "0xff"},
		{"0x1234 low byte", 0x1234, "0x34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatByteAsHex(tt.value); got != tt.want {
				t.Errorf("FormatByteAsHex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDoubleByteAsHex(t *testing.T) {
	require.Equal(t, "0x0000", FormatDoubleByteAsHex(0))
	require.Equal(t, "0x00ff", FormatDoubleByteAsHex(0xff))
	require.Equal(t, "0x0100", FormatDoubleByteAsHex(0x100))
	require.Equal(t, "0xabcd", FormatDoubleByteAsHex(0xabcd))
	require.Equal(t, "0xffff", FormatDoubleByteAsHex(0xffff))
	require.Equal(t, "0x0000", FormatDoubleByteAsHex(0x10000))
	require.Equal(t, "0xffff", FormatDoubleByteAsHex(-1))
	require.Equal(t, "0x5678", FormatDoubleByteAsHex(0x12345678))
}

func TestFormatQuadByteAsHex(t *testing.T) {
	require.Equal(t, "0x00000000", FormatQuadByteAsHex(0))
	require.Equal(t, "0x000000ff", FormatQuadByteAsHex(0xff))
	require.Equal(t, "0x12345678", FormatQuadByteAsHex(0x12345678))
	require.Equal(t, "0xffffffff", FormatQuadByteAsHex(0xffffffff))

	// Minimum width only, wider values are never truncated.
	require.Equal(t, "0x100000000", FormatQuadByteAsHex(0x100000000))
	require.Equal(t, "0xffffffffffffffff", FormatQuadByteAsHex(-1))
}

func TestFormatUnsignedByteArray(t *testing.T) {
	require.Equal(t, "{ }", FormatUnsignedByteArray(nil))
	require.Equal(t, "{ }", FormatUnsignedByteArray([]int{}))
	require.Equal(t, "{ 0x01 }", FormatUnsignedByteArray([]int{1}))
	require.Equal(t, "{ 0x00, 0x01, 0xff }", FormatUnsignedByteArray([]int{0, 1, 255}))
	require.Equal(t, "{ 0x00, 0xff }", FormatUnsignedByteArray([]int{256, -1}))
}

func TestParseUnsignedByteArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"empty braces", "{ }", []int{}},
		{"tight braces", "{}", []int{}},
		{"empty string", "", []int{}},
		{"white space only", " \t\n ", []int{}},
		{"braces and white space", "  {  \n }  ", []int{}},
		{"single", "{ 0x01 }", []int{1}},
		{"formatted", "{ 0x00, 0x01, 0xff }", []int{0, 1, 255}},
		{"no braces", "0x0a, 0x0b", []int{10, 11}},
		{"no prefix", "{ 0a, 0B, ff }", []int{10, 11, 255}},
		{"mixed prefix", "{0x01,2,0x03}", []int{1, 2, 3}},
		{"white space separated", "0x01 0x02\t0x03\n0x04", []int{1, 2, 3, 4}},
		{"comma runs", "{ 0x01,, ,0x02 , , 0x03 }", []int{1, 2, 3}},
		{"leading and trailing commas", ", 0x01, 0x02,", []int{1, 2}},
		{"single digit", "{ 0x1, 0xf }", []int{1, 15}},
		{"wider than a byte", "{ 0x100 }", []int{256}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnsignedByteArray(tt.text)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnsignedByteArrayRejectsBadTokens(t *testing.T) {
	for _, text := range []string{
		"{ 0x01, 0xzz }",
		"{ 0x01, hello }",
		"{ 0x01; 0x02 }",
		"{ 0X01 }",
		"{ 0x }",
		"{ 0x01, 0x100000000 }",
		"{ { 0x01 } }",
	} {
		got, err := ParseUnsignedByteArray(text)
		require.ErrorIs(t, err, ErrNumberFormat, "text=%q", text)
		require.Nil(t, got, "text=%q", text)
	}

	_, err := ParseUnsignedByteArray("{ 0x01, 0xzz }")
	require.ErrorContains(t, err, `"0xzz"`)
}

func TestFormatParseRoundTrip(t *testing.T) {
	all := make([]int, 0, 256)
	for b := 0; b <= 0xff; b++ {
		all = append(all, b)
	}

	for _, a := range [][]int{{}, {0}, {0xff}, {1, 2, 3}, all} {
		got, err := ParseUnsignedByteArray(FormatUnsignedByteArray(a))
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
}

func ExampleFormatUnsignedByteArray() {
	fmt.Println(FormatUnsignedByteArray([]int{0, 16, 255}))
	fmt.Println(FormatUnsignedByteArray(nil))
	// Output:
	// { 0x00, 0x10, 0xff }
	// { }
}

func ExampleParseUnsignedByteArray() {
	values, err := ParseUnsignedByteArray("0a 0x0b,0c")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(values)
	// Output: [10 11 12]
}
