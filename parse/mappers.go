package parse

import (
	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
)

// MapRight transforms the output of p. f is not called when p fails.
func MapRight[R, L, R2 any](p Parser[R, L], f func(R) R2) Parser[R2, L] {
	return Func[R2, L](func(c cursor.Cursor) either.Either[R2, L] {
		r := p.Parse(c)
		if failed(r) {
			return fail[R2](r)
		}
		return right[R2, L](f(r.GetRight()))
	})
}

// MapLeft transforms the failure of p. f is not called when p succeeds.
func MapLeft[R, L, L2 any](p Parser[R, L], f func(L) L2) Parser[R, L2] {
	return Func[R, L2](func(c cursor.Cursor) either.Either[R, L2] {
		r := p.Parse(c)
		if !failed(r) {
			return right[R, L2](r.GetRight())
		}
		return either.MakeLeft[R](f(r.GetLeft()))
	})
}

// ConstRight replaces the output of p with v.
func ConstRight[R, L, V any](p Parser[R, L], v V) Parser[V, L] {
	return MapRight(p, func(R) V { return v })
}

// ConstLeft replaces the failure of p with v.
func ConstLeft[R, L, V any](p Parser[R, L], v V) Parser[R, V] {
	return MapLeft(p, func(L) V { return v })
}

func EraseRight[R, L any](p Parser[R, L]) Parser[Unit, L] {
	return ConstRight(p, Unit{})
}

func EraseLeft[R, L any](p Parser[R, L]) Parser[R, Unit] {
	return ConstLeft(p, Unit{})
}

func EraseBoth[R, L any](p Parser[R, L]) Parser[Unit, Unit] {
	return EraseLeft(EraseRight(p))
}

// Recognize returns the input consumed by a successful p instead of its
// output. The consumed range is read again from the cursor.
func Recognize[R, L any](p Parser[R, L]) Parser[string, L] {
	return Func[string, L](func(c cursor.Cursor) either.Either[string, L] {
		begin := c.Offset()
		r := p.Parse(c)
		if failed(r) {
			return fail[string](r)
		}
		end := c.Offset()
		c.Seek(begin)
		buf := make([]byte, 0, end-begin)
		for c.Offset() < end {
			b, ok := c.Next()
			if !ok {
				break
			}
			buf = append(buf, b)
		}
		return right[string, L](string(buf))
	})
}

// Positioned pairs the output of p with the range it consumed.
func Positioned[R, L any](p Parser[R, L]) Parser[Located[R], L] {
	return Func[Located[R], L](func(c cursor.Cursor) either.Either[Located[R], L] {
		begin := c.Offset()
		r := p.Parse(c)
		if failed(r) {
			return fail[Located[R]](r)
		}
		return right[Located[R], L](Located[R]{
			Pos:   Position{Begin: begin, End: c.Offset()},
			Value: r.GetRight(),
		})
	})
}
