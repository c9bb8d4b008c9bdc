package primitive

import (
	"fmt"
	"strings"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
	"github.com/dhamidi/tokenize/parse"
)

// StringError is the failure of the quoted-string readers.
type StringError uint8

const (
	NotBegin StringError = iota
	NotEnd
	BadEscape
)

func (e StringError) String() string {
	switch e {
	case NotBegin:
		return "not_begin"
	case NotEnd:
		return "not_end"
	case BadEscape:
		return "bad_escape"
	default:
		return fmt.Sprintf("StringError(%d)", uint8(e))
	}
}

func (e StringError) Error() string { return e.String() }

const (
	DefaultQuote  = "'"
	DefaultMarker = `"""`
)

var escapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'?':  '?',
	'\'': '\'',
	'"':  '"',
	'0':  0,
	'\\': '\\',
}

// matchLiteral consumes lit if the input continues with it.
func matchLiteral(c cursor.Cursor, lit string) bool {
	return Tag(lit).Parse(c).IsRight()
}

// String reads text between two copies of quote, decoding backslash
// escapes. An empty quote uses DefaultQuote.
func String(quote string) parse.Parser[string, StringError] {
	if quote == "" {
		quote = DefaultQuote
	}
	return parse.Func[string, StringError](func(c cursor.Cursor) either.Either[string, StringError] {
		start := c.Offset()
		fail := func(e StringError) either.Either[string, StringError] {
			c.Seek(start)
			return either.MakeLeft[string](e)
		}
		if !matchLiteral(c, quote) {
			return either.MakeLeft[string](NotBegin)
		}
		var sb strings.Builder
		for {
			if matchLiteral(c, quote) {
				return either.MakeRight[string, StringError](sb.String())
			}
			b, ok := c.Next()
			if !ok {
				return fail(NotEnd)
			}
			if b != '\\' {
				sb.WriteByte(b)
				continue
			}
			e, ok := c.Next()
			if !ok {
				return fail(NotEnd)
			}
			decoded, known := escapes[e]
			if !known {
				return fail(BadEscape)
			}
			sb.WriteByte(decoded)
		}
	})
}

// RawString reads text between two copies of marker with no escape
// processing. An empty marker uses DefaultMarker.
func RawString(marker string) parse.Parser[string, StringError] {
	if marker == "" {
		marker = DefaultMarker
	}
	return parse.Func[string, StringError](func(c cursor.Cursor) either.Either[string, StringError] {
		start := c.Offset()
		if !matchLiteral(c, marker) {
			return either.MakeLeft[string](NotBegin)
		}
		var sb strings.Builder
		for !matchLiteral(c, marker) {
			b, ok := c.Next()
			if !ok {
				c.Seek(start)
				return either.MakeLeft[string](NotEnd)
			}
			sb.WriteByte(b)
		}
		return either.MakeRight[string, StringError](sb.String())
	})
}
