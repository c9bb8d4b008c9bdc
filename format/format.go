// Package format renders token streams for the command line.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/tokenize/token"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(tokens []token.Token) error
}

// New returns the encoder registered as name: "text" or "json".
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
