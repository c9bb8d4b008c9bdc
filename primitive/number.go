package primitive

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
	"github.com/dhamidi/tokenize/parse"
)

// NumberError is the failure of the integer readers.
type NumberError uint8

const (
	NotDigit NumberError = iota
	Overflow
	Underflow
)

func (e NumberError) String() string {
	switch e {
	case NotDigit:
		return "not_digit"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	default:
		return fmt.Sprintf("NumberError(%d)", uint8(e))
	}
}

func (e NumberError) Error() string { return e.String() }

// DigitParser reads one digit of a base between 2 and 36.
type DigitParser struct {
	base int
}

// Digit returns a parser for one digit in base. Digits above 9 are the
// letters a-z in either case. A base outside [2,36] panics.
func Digit(base int) DigitParser {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("primitive: digit base %d outside [2,36]", base))
	}
	return DigitParser{base: base}
}

func (d DigitParser) Base() int { return d.base }

func (d DigitParser) Parse(c cursor.Cursor) either.Either[int, parse.Unit] {
	if v, ok := d.next(c); ok {
		return either.MakeRight[int, parse.Unit](v)
	}
	return either.MakeLeft[int](parse.Unit{})
}

func (d DigitParser) next(c cursor.Cursor) (int, bool) {
	b, ok := c.Peek()
	if !ok {
		return 0, false
	}
	v := digitValue(b)
	if v >= d.base {
		return 0, false
	}
	c.Next()
	return v, true
}

func digitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'z':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'Z':
		return int(b-'A') + 10
	default:
		return 36
	}
}

// bounds returns the smallest and largest value of T.
func bounds[T constraints.Integer]() (lo, hi T) {
	width := 0
	for v := T(1); v != 0; v <<= 1 {
		width++
	}
	if ^T(0) > 0 {
		return 0, ^T(0)
	}
	hi = T(1)<<(width-1) - 1
	return -hi - 1, hi
}

// accumulate reads one or more digits into a value of T. A negative value
// is built by subtracting digits so that the minimum of T is reachable.
// Overflow is detected before each multiply-add.
func accumulate[T constraints.Integer](c cursor.Cursor, d DigitParser, lo, hi T, negative bool) (T, NumberError, bool) {
	v, ok := d.next(c)
	if !ok {
		return 0, NotDigit, false
	}
	base := T(d.base)
	var result T
	for ok {
		digit := T(v)
		if negative {
			if result < (lo+digit)/base {
				return 0, Underflow, false
			}
			result = result*base - digit
		} else {
			if result > (hi-digit)/base {
				return 0, Overflow, false
			}
			result = result*base + digit
		}
		v, ok = d.next(c)
	}
	return result, 0, true
}

func readSign(c cursor.Cursor) (negative bool) {
	b, ok := c.Peek()
	if ok && (b == '+' || b == '-') {
		c.Next()
		return b == '-'
	}
	return false
}

func number[T constraints.Integer](c cursor.Cursor, start int, d DigitParser, lo, hi T, negative bool) either.Either[T, NumberError] {
	v, nerr, ok := accumulate(c, d, lo, hi, negative)
	if !ok {
		c.Seek(start)
		return either.MakeLeft[T](nerr)
	}
	return either.MakeRight[T, NumberError](v)
}

// Unsigned reads [0-(base-1)]+ into T.
func Unsigned[T constraints.Unsigned](base int) parse.Parser[T, NumberError] {
	d := Digit(base)
	lo, hi := bounds[T]()
	return parse.Func[T, NumberError](func(c cursor.Cursor) either.Either[T, NumberError] {
		return number(c, c.Offset(), d, lo, hi, false)
	})
}

// Signed reads [-+]?[0-(base-1)]+ into T.
func Signed[T constraints.Signed](base int) parse.Parser[T, NumberError] {
	d := Digit(base)
	lo, hi := bounds[T]()
	return parse.Func[T, NumberError](func(c cursor.Cursor) either.Either[T, NumberError] {
		start := c.Offset()
		negative := readSign(c)
		return number(c, start, d, lo, hi, negative)
	})
}

var prefixBases = map[byte]int{
	'b': 2,
	'q': 4,
	'o': 8,
	'd': 10,
	'x': 16,
}

// readBase consumes a 0b, 0q, 0o, 0d or 0x prefix and returns its base.
// Without a prefix nothing is consumed and the base is 10.
func readBase(c cursor.Cursor) int {
	start := c.Offset()
	if b, ok := c.Peek(); !ok || b != '0' {
		return 10
	}
	c.Next()
	if b, ok := c.Next(); ok {
		if base, found := prefixBases[b]; found {
			return base
		}
	}
	c.Seek(start)
	return 10
}

// Integer reads a signed integer with an optional base prefix:
// [-+]?(0[bqodx])?[0-(base-1)]+
func Integer[T constraints.Signed]() parse.Parser[T, NumberError] {
	lo, hi := bounds[T]()
	digits := make(map[int]DigitParser, len(prefixBases))
	for _, base := range prefixBases {
		digits[base] = Digit(base)
	}
	return parse.Func[T, NumberError](func(c cursor.Cursor) either.Either[T, NumberError] {
		start := c.Offset()
		negative := readSign(c)
		base := readBase(c)
		return number(c, start, digits[base], lo, hi, negative)
	})
}

// Int is the auto-base integer reader for int.
var Int = Integer[int]()
