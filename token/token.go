// Package token is a small lexer built from the primitive parsers. It
// recognises identifiers, booleans, integers, reals, quoted text and a
// table of operator marks.
package token

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dhamidi/tokenize/parse"
	"github.com/dhamidi/tokenize/primitive"
)

// ID identifies the kind of a token. The upper half selects the range,
// the lower half the member.
type ID uint32

const (
	specials ID = 0 << 16
	marks    ID = 1 << 16
)

const (
	// Literals
	Variable ID = specials + iota
	Boolean
	Integer
	Real
	Text
)

const (
	// Marks
	Assign ID = marks + iota
	Add
	Sub
	Mul
	Div
	Mod
	Eq
	NotEq
	Less
	LessEq
	Greater
	GreaterEq
	LParen
	RParen
	Comma
	Semicolon
)

var idNames = map[ID]string{
	Variable:  "variable",
	Boolean:   "boolean",
	Integer:   "integer",
	Real:      "real",
	Text:      "text",
	Assign:    "assign",
	Add:       "add",
	Sub:       "sub",
	Mul:       "mul",
	Div:       "div",
	Mod:       "mod",
	Eq:        "eq",
	NotEq:     "not_eq",
	Less:      "less",
	LessEq:    "less_eq",
	Greater:   "greater",
	GreaterEq: "greater_eq",
	LParen:    "lparen",
	RParen:    "rparen",
	Comma:     "comma",
	Semicolon: "semicolon",
}

var markLiterals = map[ID]string{
	Assign:    "=",
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Div:       "/",
	Mod:       "%",
	Eq:        "==",
	NotEq:     "!=",
	Less:      "<",
	LessEq:    "<=",
	Greater:   ">",
	GreaterEq: ">=",
	LParen:    "(",
	RParen:    ")",
	Comma:     ",",
	Semicolon: ";",
}

var namedIDs = func() map[string]ID {
	m := make(map[string]ID, len(idNames))
	for id, name := range idNames {
		m[name] = id
	}
	return m
}()

// IsMark reports whether id lies in the marks range.
func IsMark(id ID) bool {
	return id&marks == marks
}

func (id ID) Name() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "unknown"
}

func (id ID) String() string {
	return fmt.Sprintf("%s(0x%x)", id.Name(), uint32(id))
}

// Literal returns the default spelling of a mark, or "" for other IDs.
func (id ID) Literal() string {
	return markLiterals[id]
}

// ByName returns the ID whose Name is name.
func ByName(name string) (ID, bool) {
	id, ok := namedIDs[name]
	return id, ok
}

// DefaultMarks is the mark table used when a lexer is built without
// WithMarks.
func DefaultMarks() []primitive.Entry[ID] {
	entries := make([]primitive.Entry[ID], 0, len(markLiterals))
	for id := Assign; id <= Semicolon; id++ {
		entries = append(entries, primitive.Entry[ID]{Literal: markLiterals[id], Value: id})
	}
	return entries
}

// Kind is the type held by a Value.
type Kind uint8

const (
	NoValue Kind = iota
	BoolValue
	IntValue
	DecimalValue
	StringValue
)

// Value is the payload of a token: nothing, a boolean, an integer, a
// decimal or a string.
type Value struct {
	kind Kind
	b    bool
	i    int
	d    decimal.Decimal
	s    string
}

func None() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: BoolValue, b: b} }

func Int(i int) Value { return Value{kind: IntValue, i: i} }

func Decimal(d decimal.Decimal) Value { return Value{kind: DecimalValue, d: d} }

func String(s string) Value { return Value{kind: StringValue, s: s} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() (bool, bool) { return v.b, v.kind == BoolValue }

func (v Value) Int() (int, bool) { return v.i, v.kind == IntValue }

func (v Value) Decimal() (decimal.Decimal, bool) { return v.d, v.kind == DecimalValue }

func (v Value) Str() (string, bool) { return v.s, v.kind == StringValue }

// Equal compares kind and payload. Decimals compare by value, so 1.50
// equals 1.5.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case BoolValue:
		return v.b == o.b
	case IntValue:
		return v.i == o.i
	case DecimalValue:
		return v.d.Equal(o.d)
	case StringValue:
		return v.s == o.s
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case BoolValue:
		return strconv.FormatBool(v.b)
	case IntValue:
		return strconv.Itoa(v.i)
	case DecimalValue:
		return v.d.String()
	case StringValue:
		return strconv.Quote(v.s)
	default:
		return "none"
	}
}

// Token is one lexeme with the range it was read from.
type Token struct {
	ID    ID
	Value Value
	Pos   parse.Position
}

func (t Token) String() string {
	return fmt.Sprintf("id:%s,value:%s", t.ID, t.Value)
}
