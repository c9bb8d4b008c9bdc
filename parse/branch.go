package parse

import (
	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
)

// Or tries a, and when it fails rewinds to the starting offset and tries b.
// The failure of b is returned as is; the failure of a is discarded.
func Or[R, L1, L2 any](a Parser[R, L1], b Parser[R, L2]) Parser[R, L2] {
	return Func[R, L2](func(c cursor.Cursor) either.Either[R, L2] {
		start := c.Offset()
		if r := a.Parse(c); !failed(r) {
			return right[R, L2](r.GetRight())
		}
		c.Seek(start)
		return b.Parse(c)
	})
}

// Choice tries each alternative in order from the same offset and returns
// the first success, or the failure of the last alternative.
func Choice[R, L any](ps ...Parser[R, L]) Parser[R, L] {
	if len(ps) == 0 {
		panic("parse: Choice needs at least one alternative")
	}
	return Func[R, L](func(c cursor.Cursor) either.Either[R, L] {
		start := c.Offset()
		var r either.Either[R, L]
		for _, p := range ps {
			c.Seek(start)
			r = p.Parse(c)
			if !failed(r) {
				return r
			}
		}
		return r
	})
}

// Opt succeeds with def without consuming input when p fails.
func Opt[R, L any](p Parser[R, L], def R) Parser[R, L] {
	return Func[R, L](func(c cursor.Cursor) either.Either[R, L] {
		start := c.Offset()
		r := p.Parse(c)
		if !failed(r) {
			return r
		}
		c.Seek(start)
		return right[R, L](def)
	})
}

// Not succeeds without consuming input when p fails, and fails with failure
// when p succeeds.
func Not[R, L any](p Parser[R, L], failure L) Parser[Unit, L] {
	return Func[Unit, L](func(c cursor.Cursor) either.Either[Unit, L] {
		start := c.Offset()
		r := p.Parse(c)
		c.Seek(start)
		if !failed(r) {
			return either.MakeLeft[Unit](failure)
		}
		return right[Unit, L](Unit{})
	})
}
