// Package primitive provides the leaf parsers: character classes,
// literals, literal tables, numbers and quoted strings.
//
// Every primitive leaves the cursor where it was when it fails.
package primitive

import (
	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
	"github.com/dhamidi/tokenize/parse"
)

// Atom matches a single byte from a character set.
type Atom struct {
	set Charset
}

func NewAtom(set Charset) Atom { return Atom{set: set} }

// AtomOf matches any byte of s.
func AtomOf(s string) Atom { return Atom{set: CharsetOf(s)} }

func AtomByte(b byte) Atom { return Atom{set: CharsetByte(b)} }

func AtomRange(first, last byte) Atom { return Atom{set: CharsetRange(first, last)} }

func (a Atom) Parse(c cursor.Cursor) either.Either[byte, parse.Unit] {
	b, ok := c.Peek()
	if !ok || !a.set.Has(b) {
		return either.MakeLeft[byte](parse.Unit{})
	}
	c.Next()
	return either.MakeRight[byte, parse.Unit](b)
}

func (a Atom) Charset() Charset { return a.set }

func (a Atom) Union(o Atom) Atom { return Atom{a.set.Union(o.set)} }

func (a Atom) Intersect(o Atom) Atom { return Atom{a.set.Intersect(o.set)} }

func (a Atom) Difference(o Atom) Atom { return Atom{a.set.Difference(o.set)} }

func (a Atom) SymmetricDifference(o Atom) Atom {
	return Atom{a.set.SymmetricDifference(o.set)}
}

func (a Atom) Complement() Atom { return Atom{a.set.Complement()} }

func (a Atom) String() string { return a.set.String() }

// Published character classes.
var (
	Sign      = AtomOf("+-")
	Dot       = AtomOf(".")
	Space     = AtomOf(" \t\r\n")
	Lower     = AtomRange('a', 'z')
	Upper     = AtomRange('A', 'Z')
	Alpha     = Lower.Union(Upper)
	Digits    = AtomRange('0', '9')
	Alnum     = Alpha.Union(Digits)
	HexDigits = Digits.Union(AtomRange('a', 'f')).Union(AtomRange('A', 'F'))
)
