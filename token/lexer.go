package token

import (
	"fmt"
	"maps"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
	"github.com/dhamidi/tokenize/parse"
	"github.com/dhamidi/tokenize/primitive"
)

// Error is the first failure met by Lexer.All.
type Error struct {
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

type Option func(*Lexer)

// WithMarks replaces the default mark table.
func WithMarks(entries ...primitive.Entry[ID]) Option {
	return func(l *Lexer) {
		l.marks = entries
	}
}

// WithKeywords maps reserved words to IDs. A keyword token carries the
// word as its value.
func WithKeywords(keywords map[string]ID) Option {
	return func(l *Lexer) {
		maps.Copy(l.keywords, keywords)
	}
}

// WithTrace logs every component parser through parse.Trace.
func WithTrace() Option {
	return func(l *Lexer) {
		l.trace = true
	}
}

// Lexer turns input into tokens. A Lexer holds no per-input state and may
// be shared.
type Lexer struct {
	marks    []primitive.Entry[ID]
	keywords map[string]ID
	trace    bool

	space parse.Parser[[]byte, parse.Unit]
	token parse.Parser[Token, string]
}

func NewLexer(opts ...Option) *Lexer {
	l := &Lexer{
		marks: DefaultMarks(),
		keywords: map[string]ID{
			"true":  Boolean,
			"false": Boolean,
		},
	}
	for _, opt := range opts {
		opt(l)
	}

	l.space = parse.Many0[byte, parse.Unit](primitive.Space)
	l.token = parse.Choice(
		l.traced("marks", l.markParser()),
		l.traced("number", numberParser()),
		l.traced("word", l.wordParser()),
		l.traced("text", textParser()),
	)
	return l
}

func (l *Lexer) traced(name string, p parse.Parser[Token, string]) parse.Parser[Token, string] {
	if !l.trace {
		return p
	}
	return parse.Trace(name, p)
}

func (l *Lexer) markParser() parse.Parser[Token, string] {
	located := parse.Positioned[ID, parse.Unit](primitive.NewTagMapper(l.marks...))
	tokens := parse.MapRight(located, func(m parse.Located[ID]) Token {
		return Token{ID: m.Value, Pos: m.Pos}
	})
	return parse.ConstLeft(tokens, "failed to parse marks")
}

// numberParser reads an integer or a real, whichever is longer. Integers
// win ties, so "12" is an integer and "12.0" a real. An integer too large
// for int is read as a real. A base prefix without digits ("0x", "0b2")
// leaves its zero as an integer, like a bare "0".
func numberParser() parse.Parser[Token, string] {
	integer := parse.Positioned(primitive.Integer[int]())
	fraction := parse.Positioned(primitive.Decimal)
	return parse.Func[Token, string](func(c cursor.Cursor) either.Either[Token, string] {
		start := c.Offset()
		ir := integer.Parse(c)
		i, iok := ir.OptRight()
		c.Seek(start)
		d, dok := fraction.Parse(c).OptRight()

		switch {
		case !iok && dok && ir.GetLeft() == primitive.NotDigit:
			zero := int(d.Value.IntPart())
			return either.MakeRight[Token, string](Token{ID: Integer, Value: Int(zero), Pos: d.Pos})
		case iok && (!dok || i.Pos.End >= d.Pos.End):
			c.Seek(i.Pos.End)
			return either.MakeRight[Token, string](Token{ID: Integer, Value: Int(i.Value), Pos: i.Pos})
		case dok:
			return either.MakeRight[Token, string](Token{ID: Real, Value: Decimal(d.Value), Pos: d.Pos})
		default:
			c.Seek(start)
			return either.MakeLeft[Token]("failed to parse number")
		}
	})
}

var (
	wordHead = primitive.Alpha.Union(primitive.AtomByte('_'))
	wordTail = primitive.Alnum.Union(primitive.AtomByte('_'))
)

func (l *Lexer) wordParser() parse.Parser[Token, string] {
	keywords := l.keywords
	word := parse.Positioned(parse.TextOf[byte, parse.Unit](wordHead).
		Then(parse.Many0String[byte, parse.Unit](wordTail)).Parser)
	tokens := parse.MapRight(word, func(w parse.Located[string]) Token {
		id, reserved := keywords[w.Value]
		switch {
		case !reserved:
			return Token{ID: Variable, Value: String(w.Value), Pos: w.Pos}
		case id == Boolean:
			return Token{ID: Boolean, Value: Bool(w.Value == "true"), Pos: w.Pos}
		default:
			return Token{ID: id, Value: String(w.Value), Pos: w.Pos}
		}
	})
	return parse.ConstLeft(tokens, "failed to parse word")
}

// textParser is the last alternative of the lexer, so its failure is the
// one reported for input no component accepts. A quote that opens but does
// not close is reported as such instead of falling through.
func textParser() parse.Parser[Token, string] {
	quoted := []parse.Parser[parse.Located[string], primitive.StringError]{
		parse.Positioned(primitive.RawString(primitive.DefaultMarker)),
		parse.Positioned(primitive.String(`"`)),
		parse.Positioned(primitive.String(primitive.DefaultQuote)),
	}
	return parse.Func[Token, string](func(c cursor.Cursor) either.Either[Token, string] {
		for _, p := range quoted {
			r := p.Parse(c)
			if t, ok := r.OptRight(); ok {
				return either.MakeRight[Token, string](Token{ID: Text, Value: String(t.Value), Pos: t.Pos})
			}
			switch r.GetLeft() {
			case primitive.NotEnd:
				return either.MakeLeft[Token]("unterminated text")
			case primitive.BadEscape:
				return either.MakeLeft[Token]("bad escape in text")
			}
		}
		b, _ := c.Peek()
		return either.MakeLeft[Token](fmt.Sprintf("unexpected byte %q", b))
	})
}

// Next skips whitespace and reads one token.
func (l *Lexer) Next(c cursor.Cursor) either.Either[Token, string] {
	l.space.Parse(c)
	if _, ok := c.Peek(); !ok {
		return either.MakeLeft[Token]("end of input")
	}
	return l.token.Parse(c)
}

// All reads tokens until the end of input.
func (l *Lexer) All(c cursor.Cursor) ([]Token, error) {
	var tokens []Token
	for {
		l.space.Parse(c)
		if _, ok := c.Peek(); !ok {
			return tokens, nil
		}
		offset := c.Offset()
		r := l.token.Parse(c)
		if msg, failed := r.OptLeft(); failed {
			return tokens, &Error{Offset: offset, Message: msg}
		}
		tokens = append(tokens, r.GetRight())
	}
}

// Keywords returns a copy of the lexer's reserved words.
func (l *Lexer) Keywords() map[string]ID {
	return maps.Clone(l.keywords)
}
