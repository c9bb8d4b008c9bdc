package parse

import (
	"fmt"
	"math"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
)

// Unbounded is the max of a repetition without upper limit.
const Unbounded = math.MaxInt

func checkBounds(min, max int) {
	if min < 0 || max < min {
		panic(fmt.Sprintf("parse: invalid repetition bounds [%d,%d]", min, max))
	}
}

// repeat runs p min times, each failure rewinding to the start of the
// whole repetition, then up to max-min more times, a failure rewinding only
// to the start of that attempt. Without an upper bound the loop also stops
// after a success that consumed nothing.
func repeat[T, Acc, L any](p Parser[T, L], min, max int, push func(Acc, T) Acc) Parser[Acc, L] {
	checkBounds(min, max)
	return Func[Acc, L](func(c cursor.Cursor) either.Either[Acc, L] {
		var acc Acc
		head := c.Offset()
		i := 0
		for ; i < min; i++ {
			r := p.Parse(c)
			if failed(r) {
				c.Seek(head)
				return fail[Acc](r)
			}
			acc = push(acc, r.GetRight())
		}
		for ; i < max; i++ {
			tail := c.Offset()
			r := p.Parse(c)
			if failed(r) {
				c.Seek(tail)
				break
			}
			acc = push(acc, r.GetRight())
			if max == Unbounded && c.Offset() == tail {
				break
			}
		}
		return right[Acc, L](acc)
	})
}

// Repeat collects between min and max outputs of p into a slice.
func Repeat[T, L any](p Parser[T, L], min, max int) Parser[[]T, L] {
	return repeat(p, min, max, func(xs []T, x T) []T { return append(xs, x) })
}

// RepeatString is Repeat for byte or string outputs, accumulating into a
// string.
func RepeatString[C Char, L any](p Parser[C, L], min, max int) Parser[string, L] {
	bytes := repeat(p, min, max, func(buf []byte, x C) []byte { return appendChar(buf, x) })
	return MapRight(bytes, func(buf []byte) string { return string(buf) })
}

func Many0[T, L any](p Parser[T, L]) Parser[[]T, L] { return Repeat(p, 0, Unbounded) }

func Many1[T, L any](p Parser[T, L]) Parser[[]T, L] { return Repeat(p, 1, Unbounded) }

// Count runs p exactly n times.
func Count[T, L any](p Parser[T, L], n int) Parser[[]T, L] { return Repeat(p, n, n) }

func Many0String[C Char, L any](p Parser[C, L]) Parser[string, L] {
	return RepeatString(p, 0, Unbounded)
}

func Many1String[C Char, L any](p Parser[C, L]) Parser[string, L] {
	return RepeatString(p, 1, Unbounded)
}

func CountString[C Char, L any](p Parser[C, L], n int) Parser[string, L] {
	return RepeatString(p, n, n)
}

// SeparatedBy1 parses p (sep p)*. A separator that is not followed by an
// item is left unconsumed.
func SeparatedBy1[T, L any](p Parser[T, L], sep Parser[Unit, L]) Parser[[]T, L] {
	return Prepend(p, Many0(Preceded(sep, p)))
}

// SeparatedBy0 is SeparatedBy1 that also accepts an empty list.
func SeparatedBy0[T, L any](p Parser[T, L], sep Parser[Unit, L]) Parser[[]T, L] {
	return Opt(SeparatedBy1(p, sep), []T(nil))
}
