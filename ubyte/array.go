package ubyte

// Array is a sequence of unsigned bytes that reads and writes itself in the
// FormatUnsignedByteArray text format.
type Array []int

func (a Array) String() string {
	return FormatUnsignedByteArray(a)
}

func (a Array) MarshalText() ([]byte, error) {
	return []byte(FormatUnsignedByteArray(a)), nil
}

func (a *Array) UnmarshalText(text []byte) error {
	values, err := ParseUnsignedByteArray(string(text))
	if err != nil {
		return err
	}
	*a = values
	return nil
}

// IsUnsignedByteArray returns true if every element of values is in the
// range 0-255.
func IsUnsignedByteArray(values []int) bool {
	for _, v := range values {
		if !IsUnsignedByte(v) {
			return false
		}
	}
	return true
}

// ToSignedByteArray converts each element with ToSignedByte.
func ToSignedByteArray(values []int) []int8 {
	out := make([]int8, len(values))
	for i, v := range values {
		out[i] = ToSignedByte(v)
	}
	return out
}

// ToUnsignedByteArray converts each element with ToUnsignedByte.
func ToUnsignedByteArray(values []int8) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = ToUnsignedByte(int(v))
	}
	return out
}
