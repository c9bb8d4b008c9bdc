package parse

// P is a fluent wrapper around a parser. Methods that would need to
// introduce new type parameters are only available as package functions
// (MapRight, Seq, Pair); methods whose result nests R (Repeat, Positioned,
// Then) return a plain Parser that can be wrapped again with Of.
type P[R, L any] struct {
	Parser[R, L]
}

func Of[R, L any](p Parser[R, L]) P[R, L] {
	return P[R, L]{Parser: p}
}

func (p P[R, L]) Or(alt Parser[R, L]) P[R, L] { return Of(Or(p.Parser, alt)) }

func (p P[R, L]) Opt(def R) P[R, L] { return Of(Opt(p.Parser, def)) }

func (p P[R, L]) Map(f func(R) R) P[R, L] { return Of(MapRight(p.Parser, f)) }

func (p P[R, L]) MapErr(f func(L) L) P[R, L] { return Of(MapLeft(p.Parser, f)) }

func (p P[R, L]) ConstRight(v R) P[R, L] { return Of(ConstRight(p.Parser, v)) }

func (p P[R, L]) ConstLeft(v L) P[R, L] { return Of(ConstLeft(p.Parser, v)) }

func (p P[R, L]) EraseRight() P[Unit, L] { return Of(EraseRight(p.Parser)) }

func (p P[R, L]) EraseLeft() P[R, Unit] { return Of(EraseLeft(p.Parser)) }

func (p P[R, L]) EraseBoth() P[Unit, Unit] { return Of(EraseBoth(p.Parser)) }

func (p P[R, L]) Recognize() P[string, L] { return Of(Recognize(p.Parser)) }

func (p P[R, L]) ThenSkip(post Parser[Unit, L]) P[R, L] { return Of(Terminated(p.Parser, post)) }

func (p P[R, L]) Trace(name string) P[R, L] { return Of(Trace(name, p.Parser)) }

func (p P[R, L]) Then(next Parser[R, L]) Parser[[]R, L] { return Both(p.Parser, next) }

func (p P[R, L]) Repeat(min, max int) Parser[[]R, L] { return Repeat(p.Parser, min, max) }

func (p P[R, L]) Many0() Parser[[]R, L] { return Many0(p.Parser) }

func (p P[R, L]) Many1() Parser[[]R, L] { return Many1(p.Parser) }

func (p P[R, L]) Count(n int) Parser[[]R, L] { return Count(p.Parser, n) }

func (p P[R, L]) Positioned() Parser[Located[R], L] { return Positioned(p.Parser) }

// Chars is a fluent wrapper for parsers whose outputs concatenate into a
// string.
type Chars[L any] struct {
	Parser[string, L]
}

// TextOf starts a Chars chain from a byte or string parser.
func TextOf[C Char, L any](p Parser[C, L]) Chars[L] {
	return Chars[L]{Parser: MapRight(p, func(c C) string { return string(appendChar(nil, c)) })}
}

func (t Chars[L]) Then(next Parser[string, L]) Chars[L] { return Chars[L]{Text(t.Parser, next)} }

func (t Chars[L]) ThenChar(next Parser[byte, L]) Chars[L] { return Chars[L]{Text(t.Parser, next)} }

func (t Chars[L]) Or(alt Parser[string, L]) Chars[L] { return Chars[L]{Or(t.Parser, alt)} }

func (t Chars[L]) Opt() Chars[L] { return Chars[L]{Opt(t.Parser, "")} }

func (t Chars[L]) Repeat(min, max int) Chars[L] { return Chars[L]{RepeatString(t.Parser, min, max)} }

func (t Chars[L]) Many0() Chars[L] { return t.Repeat(0, Unbounded) }

func (t Chars[L]) Many1() Chars[L] { return t.Repeat(1, Unbounded) }

func (t Chars[L]) Recognize() Chars[L] { return Chars[L]{Recognize(t.Parser)} }

func (t Chars[L]) P() P[string, L] { return Of(t.Parser) }
