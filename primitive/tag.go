package primitive

import (
	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
	"github.com/dhamidi/tokenize/parse"
)

// Tag matches a literal string.
type Tag string

func (t Tag) Parse(c cursor.Cursor) either.Either[string, parse.Unit] {
	start := c.Offset()
	for i := 0; i < len(t); i++ {
		b, ok := c.Next()
		if !ok || b != t[i] {
			c.Seek(start)
			return either.MakeLeft[string](parse.Unit{})
		}
	}
	return either.MakeRight[string, parse.Unit](string(t))
}
