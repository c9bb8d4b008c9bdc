// Package either provides a two-armed result type.
//
// An Either holds exactly one of a success value (the right arm) or a
// failure value (the left arm). The empty state only appears after the
// payload has been moved out or the value was reset explicitly.
//
// Accessors that name an arm (GetRight, IntoLeft, ...) panic with a
// *ModeError when the Either is in another mode. Such a panic is a
// programming error; callers that do not know the mode use OptRight,
// RightOr or inspect Mode first.
package either

import "fmt"

// Mode tells which arm of an Either is live.
type Mode uint8

const (
	None Mode = iota
	Right
	Left
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

func (m Mode) valid() bool {
	return m <= Left
}

// ModeError is the panic value raised when an arm is accessed while the
// Either is in a different mode.
type ModeError struct {
	Want Mode
	Got  Mode
}

func (e *ModeError) Error() string {
	if !e.Got.valid() {
		return fmt.Sprintf("either: unexpected %s", e.Got)
	}
	return fmt.Sprintf("either is not %s (is %s)", e.Want, e.Got)
}

// Either is a tagged union of a right value R and a left value L.
// The zero value is empty (mode None).
type Either[R, L any] struct {
	mode  Mode
	right R
	left  L
}

func MakeRight[R, L any](r R) Either[R, L] {
	return Either[R, L]{mode: Right, right: r}
}

func MakeLeft[R, L any](l L) Either[R, L] {
	return Either[R, L]{mode: Left, left: l}
}

func (e Either[R, L]) Mode() Mode { return e.mode }

func (e Either[R, L]) IsRight() bool { return e.mode == Right }

func (e Either[R, L]) IsLeft() bool { return e.mode == Left }

func (e Either[R, L]) IsNone() bool { return e.mode == None }

func (e Either[R, L]) check(want Mode) {
	if e.mode != want {
		panic(&ModeError{Want: want, Got: e.mode})
	}
}

// GetRight returns the right value. It panics if the Either is not right.
func (e Either[R, L]) GetRight() R {
	e.check(Right)
	return e.right
}

// GetLeft returns the left value. It panics if the Either is not left.
func (e Either[R, L]) GetLeft() L {
	e.check(Left)
	return e.left
}

// IntoRight moves the right value out and leaves e empty.
func (e *Either[R, L]) IntoRight() R {
	e.check(Right)
	r := e.right
	e.Reset()
	return r
}

// IntoLeft moves the left value out and leaves e empty.
func (e *Either[R, L]) IntoLeft() L {
	e.check(Left)
	l := e.left
	e.Reset()
	return l
}

func (e Either[R, L]) OptRight() (R, bool) {
	if e.mode != Right {
		var zero R
		return zero, false
	}
	return e.right, true
}

func (e Either[R, L]) OptLeft() (L, bool) {
	if e.mode != Left {
		var zero L
		return zero, false
	}
	return e.left, true
}

// RightOr returns the right value, or def when e is not right.
func (e Either[R, L]) RightOr(def R) R {
	if r, ok := e.OptRight(); ok {
		return r
	}
	return def
}

// LeftOr returns the left value, or def when e is not left.
func (e Either[R, L]) LeftOr(def L) L {
	if l, ok := e.OptLeft(); ok {
		return l
	}
	return def
}

func (e *Either[R, L]) SetRight(r R) {
	e.Reset()
	e.mode = Right
	e.right = r
}

func (e *Either[R, L]) SetLeft(l L) {
	e.Reset()
	e.mode = Left
	e.left = l
}

// Reset drops the live payload.
func (e *Either[R, L]) Reset() {
	*e = Either[R, L]{}
}

func (e Either[R, L]) String() string {
	switch e.mode {
	case Right:
		return fmt.Sprintf("right(%v)", e.right)
	case Left:
		return fmt.Sprintf("left(%v)", e.left)
	case None:
		return "none"
	default:
		panic(&ModeError{Got: e.mode})
	}
}

// MapRight transforms the right value with f. A left value is carried
// over untouched and f is not called.
func MapRight[R, L, R2 any](e Either[R, L], f func(R) R2) Either[R2, L] {
	switch e.mode {
	case Right:
		return MakeRight[R2, L](f(e.right))
	case Left:
		return MakeLeft[R2](e.left)
	case None:
		return Either[R2, L]{}
	default:
		panic(&ModeError{Got: e.mode})
	}
}

// MapLeft transforms the left value with f. A right value is carried
// over untouched and f is not called.
func MapLeft[R, L, L2 any](e Either[R, L], f func(L) L2) Either[R, L2] {
	switch e.mode {
	case Right:
		return MakeRight[R, L2](e.right)
	case Left:
		return MakeLeft[R](f(e.left))
	case None:
		return Either[R, L2]{}
	default:
		panic(&ModeError{Got: e.mode})
	}
}
