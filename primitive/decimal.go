package primitive

import (
	"github.com/shopspring/decimal"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
	"github.com/dhamidi/tokenize/parse"
)

func decimalSyntax() parse.Parser[string, parse.Unit] {
	sign := parse.Opt(parse.EraseRight[byte, parse.Unit](Sign), parse.Unit{})
	digits := parse.EraseRight(parse.Many1[byte, parse.Unit](Digits))
	fraction := parse.Preceded(parse.EraseRight[byte, parse.Unit](Dot), digits)
	exponent := parse.Preceded(
		parse.EraseRight[byte, parse.Unit](AtomOf("eE")),
		parse.Preceded(sign, digits),
	)
	return parse.Recognize(parse.Sequence(
		sign,
		digits,
		parse.Opt(fraction, parse.Unit{}),
		parse.Opt(exponent, parse.Unit{}),
	))
}

// Decimal reads [-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)? as an arbitrary
// precision decimal. A missing digit is NotDigit; an exponent too large to
// represent is Overflow.
var Decimal parse.Parser[decimal.Decimal, NumberError] = decimalParser(decimalSyntax())

func decimalParser(syntax parse.Parser[string, parse.Unit]) parse.Parser[decimal.Decimal, NumberError] {
	return parse.Func[decimal.Decimal, NumberError](func(c cursor.Cursor) either.Either[decimal.Decimal, NumberError] {
		start := c.Offset()
		text, ok := syntax.Parse(c).OptRight()
		if !ok {
			c.Seek(start)
			return either.MakeLeft[decimal.Decimal](NotDigit)
		}
		d, err := decimal.NewFromString(text)
		if err != nil {
			c.Seek(start)
			return either.MakeLeft[decimal.Decimal](Overflow)
		}
		return either.MakeRight[decimal.Decimal, NumberError](d)
	})
}
