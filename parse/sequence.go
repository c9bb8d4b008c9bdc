package parse

import (
	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
)

// Char is the set of outputs that merge into strings.
type Char interface {
	byte | string
}

func appendChar[C Char](buf []byte, c C) []byte {
	switch v := any(c).(type) {
	case byte:
		return append(buf, v)
	case string:
		return append(buf, v...)
	}
	return buf
}

// Seq runs a then b and combines both outputs with merge. A failure of
// either operand is returned unchanged; input consumed by a is kept when
// b fails.
func Seq[A, B, C, L any](a Parser[A, L], b Parser[B, L], merge func(A, B) C) Parser[C, L] {
	return Func[C, L](func(c cursor.Cursor) either.Either[C, L] {
		ra := a.Parse(c)
		if !ra.IsRight() {
			return fail[C](ra)
		}
		rb := b.Parse(c)
		if !rb.IsRight() {
			return fail[C](rb)
		}
		return right[C, L](merge(ra.GetRight(), rb.GetRight()))
	})
}

// Pair keeps both outputs.
func Pair[A, B, L any](a Parser[A, L], b Parser[B, L]) Parser[Tuple[A, B], L] {
	return Seq(a, b, func(x A, y B) Tuple[A, B] { return Tuple[A, B]{First: x, Second: y} })
}

// Both merges two values of the same type into a two element slice.
func Both[T, L any](a, b Parser[T, L]) Parser[[]T, L] {
	return Seq(a, b, func(x, y T) []T { return []T{x, y} })
}

// Append grows the slice produced by a with the value produced by b.
func Append[T, L any](a Parser[[]T, L], b Parser[T, L]) Parser[[]T, L] {
	return Seq(a, b, func(xs []T, y T) []T { return append(xs, y) })
}

// Prepend puts the value produced by a in front of the slice produced by b.
func Prepend[T, L any](a Parser[T, L], b Parser[[]T, L]) Parser[[]T, L] {
	return Seq(a, b, func(x T, ys []T) []T {
		out := make([]T, 0, len(ys)+1)
		out = append(out, x)
		return append(out, ys...)
	})
}

// Concat joins two slices.
func Concat[T, L any](a, b Parser[[]T, L]) Parser[[]T, L] {
	return Seq(a, b, func(xs, ys []T) []T {
		out := make([]T, 0, len(xs)+len(ys))
		out = append(out, xs...)
		return append(out, ys...)
	})
}

// Text concatenates byte or string outputs into a string, so that
// Text(Text(digit, digit), digit) reads "123" as "123".
func Text[A, B Char, L any](a Parser[A, L], b Parser[B, L]) Parser[string, L] {
	return Seq(a, b, func(x A, y B) string {
		buf := appendChar(nil, x)
		return string(appendChar(buf, y))
	})
}

// Preceded drops the erased output of pre.
func Preceded[T, L any](pre Parser[Unit, L], p Parser[T, L]) Parser[T, L] {
	return Seq(pre, p, func(_ Unit, v T) T { return v })
}

// Terminated drops the erased output of post.
func Terminated[T, L any](p Parser[T, L], post Parser[Unit, L]) Parser[T, L] {
	return Seq(p, post, func(v T, _ Unit) T { return v })
}

// Delimited keeps only the output of p.
func Delimited[T, L any](opening Parser[Unit, L], p Parser[T, L], closing Parser[Unit, L]) Parser[T, L] {
	return Terminated(Preceded(opening, p), closing)
}

// Sequence runs every parser in order and collects their outputs.
func Sequence[T, L any](ps ...Parser[T, L]) Parser[[]T, L] {
	return Func[[]T, L](func(c cursor.Cursor) either.Either[[]T, L] {
		out := make([]T, 0, len(ps))
		for _, p := range ps {
			r := p.Parse(c)
			if !r.IsRight() {
				return fail[[]T](r)
			}
			out = append(out, r.GetRight())
		}
		return right[[]T, L](out)
	})
}

// TextSequence runs every parser in order and concatenates their outputs.
func TextSequence[C Char, L any](ps ...Parser[C, L]) Parser[string, L] {
	return Func[string, L](func(c cursor.Cursor) either.Either[string, L] {
		var buf []byte
		for _, p := range ps {
			r := p.Parse(c)
			if !r.IsRight() {
				return fail[string](r)
			}
			buf = appendChar(buf, r.GetRight())
		}
		return right[string, L](string(buf))
	})
}
