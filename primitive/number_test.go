package primitive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/tokenize/cursor"
)

func TestDigit(t *testing.T) {
	hex := Digit(16)
	for input, want := range map[string]int{"0": 0, "9": 9, "a": 10, "F": 15} {
		r := hex.Parse(cursor.FromString(input))
		require.Equal(t, want, r.GetRight(), input)
	}

	c := cursor.FromString("g")
	require.True(t, hex.Parse(c).IsLeft())
	require.Equal(t, 0, c.Offset())

	require.Equal(t, 35, Digit(36).Parse(cursor.FromString("z")).GetRight())
}

func TestDigitBadBase(t *testing.T) {
	require.Panics(t, func() { Digit(1) })
	require.Panics(t, func() { Digit(37) })
}

func TestUnsigned(t *testing.T) {
	p := Unsigned[uint8](10)

	c := cursor.FromString("255,")
	require.Equal(t, uint8(255), p.Parse(c).GetRight())
	require.Equal(t, 3, c.Offset())

	c = cursor.FromString("256")
	require.Equal(t, Overflow, p.Parse(c).GetLeft())
	require.Equal(t, 0, c.Offset())

	c = cursor.FromString("-1")
	require.Equal(t, NotDigit, p.Parse(c).GetLeft())
	require.Equal(t, 0, c.Offset())

	require.Equal(t, uint64(math.MaxUint64),
		Unsigned[uint64](16).Parse(cursor.FromString("ffffffffffffffff")).GetRight())
}

func TestSigned(t *testing.T) {
	p := Signed[int16](10)

	tests := []struct {
		input  string
		value  int16
		err    NumberError
		ok     bool
		offset int
	}{
		{"32767", math.MaxInt16, 0, true, 5},
		{"+12x", 12, 0, true, 3},
		{"-32768", math.MinInt16, 0, true, 6},
		{"32768", 0, Overflow, false, 0},
		{"-32769", 0, Underflow, false, 0},
		{"-", 0, NotDigit, false, 0},
		{"x", 0, NotDigit, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := cursor.FromString(tt.input)
			r := p.Parse(c)
			require.Equal(t, tt.ok, r.IsRight())
			if tt.ok {
				require.Equal(t, tt.value, r.GetRight())
			} else {
				require.Equal(t, tt.err, r.GetLeft())
			}
			require.Equal(t, tt.offset, c.Offset())
		})
	}
}

func TestIntegerBoundaries(t *testing.T) {
	p := Integer[int8]()

	tests := []struct {
		input string
		value int8
		err   NumberError
		ok    bool
	}{
		{"0x7F", 127, 0, true},
		{"0x80", 0, Overflow, false},
		{"-0x80", -128, 0, true},
		{"-0x81", 0, Underflow, false},
		{"127", 127, 0, true},
		{"128", 0, Overflow, false},
		{"-128", -128, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := cursor.FromString(tt.input)
			r := p.Parse(c)
			if tt.ok {
				require.Equal(t, tt.value, r.GetRight())
				require.Equal(t, len(tt.input), c.Offset())
			} else {
				require.Equal(t, tt.err, r.GetLeft())
				require.Equal(t, 0, c.Offset())
			}
		})
	}
}

func TestIntegerPrefixes(t *testing.T) {
	tests := []struct {
		input  string
		value  int
		offset int
	}{
		{"0b101", 5, 5},
		{"0q13", 7, 4},
		{"0o17", 15, 4},
		{"0d19", 19, 4},
		{"0x1f", 31, 4},
		{"0", 0, 1},
		{"012", 12, 3},
		{"0y", 0, 1},
		{"-0b11", -3, 5},
		{"0X1f", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := cursor.FromString(tt.input)
			require.Equal(t, tt.value, Int.Parse(c).GetRight())
			require.Equal(t, tt.offset, c.Offset())
		})
	}
}

func TestIntegerPrefixWithoutDigits(t *testing.T) {
	for _, input := range []string{"0x", "-0x", "0b2"} {
		c := cursor.FromString(input)
		require.Equal(t, NotDigit, Int.Parse(c).GetLeft(), input)
		require.Equal(t, 0, c.Offset(), input)
	}
}

func TestNumberErrorString(t *testing.T) {
	require.Equal(t, "overflow", Overflow.Error())
	require.Equal(t, "NumberError(9)", NumberError(9).String())
}
