package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/tokenize/token"
)

// LineEncoder writes one token per line as "[begin,end) id value".
type LineEncoder struct {
	w      io.Writer
	tokens []token.Token
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(tokens []token.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, t := range e.tokens {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", t.Pos, t.ID.Name(), e.valueStr(t))
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) valueStr(t token.Token) string {
	if t.Value.Kind() == token.NoValue && token.IsMark(t.ID) {
		if lit := t.ID.Literal(); lit != "" {
			return lit
		}
	}
	return t.Value.String()
}
