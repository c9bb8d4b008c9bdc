package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/tokenize/token"
)

// JSONEncoder writes the tokens as an indented JSON array.
type JSONEncoder struct {
	w      io.Writer
	tokens []token.Token
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tokens []token.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	tokens := e.tokens
	if tokens == nil {
		tokens = []token.Token{}
	}
	return json.MarshalIndent(tokens, "", "  ")
}
