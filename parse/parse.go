// Package parse defines the parser capability and the combinators that
// compose parsers into larger ones.
//
// A parser is anything with a Parse method that reads from a
// cursor.Cursor and returns an either.Either: the right arm carries the
// parsed value, the left arm a parser-specific failure. Primitive parsers
// never consume input when they fail. Combinators document their own
// rewind behaviour:
//
//   - Seq and the merge helpers built on it run left to right and do not
//     undo the left operand when the right one fails.
//   - Or and Choice rewind to the starting offset before trying the next
//     alternative.
//   - Repeat rewinds to its own start when a required repetition fails and
//     to the start of the failed attempt once the required count was met.
//
// Parser values are immutable after construction and may be shared
// between goroutines as long as every goroutine uses its own cursor.
package parse

import (
	"fmt"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
)

// Parser is the capability every primitive and combinator provides.
type Parser[R, L any] interface {
	Parse(c cursor.Cursor) either.Either[R, L]
}

// Func adapts a plain function to the Parser interface.
type Func[R, L any] func(c cursor.Cursor) either.Either[R, L]

func (f Func[R, L]) Parse(c cursor.Cursor) either.Either[R, L] {
	return f(c)
}

// Unit is the placeholder payload of erased values and of failures that
// carry no detail.
type Unit struct{}

func (Unit) String() string { return "()" }

// Position is the offset range [Begin, End) consumed by a parse.
type Position struct {
	Begin int
	End   int
}

func (p Position) Size() int { return p.End - p.Begin }

func (p Position) String() string {
	return fmt.Sprintf("[%d,%d)", p.Begin, p.End)
}

// Located pairs a parsed value with the range it was parsed from.
type Located[T any] struct {
	Pos   Position
	Value T
}

// Tuple is the result of Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

func right[R, L any](r R) either.Either[R, L] {
	return either.MakeRight[R, L](r)
}

// fail re-types a failed result. A result in any mode other than left is
// a defect and panics through GetLeft.
func fail[R2, R, L any](e either.Either[R, L]) either.Either[R2, L] {
	return either.MakeLeft[R2](e.GetLeft())
}

// failed reports whether e is a failure. An empty result is a defect.
func failed[R, L any](e either.Either[R, L]) bool {
	switch e.Mode() {
	case either.Right:
		return false
	case either.Left:
		return true
	default:
		panic(&either.ModeError{Want: either.Left, Got: e.Mode()})
	}
}
