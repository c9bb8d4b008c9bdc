package either

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEitherRight(t *testing.T) {
	e := MakeRight[int, string](42)

	require.Equal(t, Right, e.Mode())
	require.True(t, e.IsRight())
	require.False(t, e.IsLeft())
	require.False(t, e.IsNone())
	require.Equal(t, 42, e.GetRight())

	r, ok := e.OptRight()
	require.True(t, ok)
	require.Equal(t, 42, r)

	_, ok = e.OptLeft()
	require.False(t, ok)
	require.Equal(t, "fallback", e.LeftOr("fallback"))
	require.Equal(t, 42, e.RightOr(0))
}

func TestEitherLeft(t *testing.T) {
	e := MakeLeft[int]("boom")

	require.Equal(t, Left, e.Mode())
	require.Equal(t, "boom", e.GetLeft())
	require.Equal(t, 7, e.RightOr(7))

	l, ok := e.OptLeft()
	require.True(t, ok)
	require.Equal(t, "boom", l)
}

func TestEitherZeroIsNone(t *testing.T) {
	var e Either[int, string]
	require.True(t, e.IsNone())
	require.Equal(t, "none", e.String())
}

func TestEitherWrongArmPanics(t *testing.T) {
	right := MakeRight[int, string](1)
	left := MakeLeft[int]("x")

	require.PanicsWithError(t, "either is not left (is right)", func() { right.GetLeft() })
	require.PanicsWithError(t, "either is not right (is left)", func() { left.GetRight() })
	require.Panics(t, func() { left.IntoRight() })
	require.Panics(t, func() { right.IntoLeft() })
}

func TestEitherIntoMovesOut(t *testing.T) {
	e := MakeRight[[]int, string]([]int{1, 2})
	v := e.IntoRight()

	require.Equal(t, []int{1, 2}, v)
	require.True(t, e.IsNone())
	require.Panics(t, func() { e.GetRight() })

	l := MakeLeft[int]("gone")
	require.Equal(t, "gone", l.IntoLeft())
	require.True(t, l.IsNone())
}

func TestEitherCopyDuplicatesPayload(t *testing.T) {
	orig := MakeRight[string, int]("a")
	cp := orig
	_ = cp.IntoRight()

	require.True(t, cp.IsNone())
	require.Equal(t, "a", orig.GetRight())
}

func TestEitherSetAndReset(t *testing.T) {
	var e Either[int, string]

	e.SetRight(3)
	require.Equal(t, 3, e.GetRight())

	e.SetLeft("oops")
	require.Equal(t, "oops", e.GetLeft())
	_, ok := e.OptRight()
	require.False(t, ok)

	e.Reset()
	require.True(t, e.IsNone())
}

func TestMapRight(t *testing.T) {
	called := false
	toString := func(v int) string {
		called = true
		return strconv.Itoa(v)
	}

	r := MapRight(MakeRight[int, bool](12), toString)
	require.True(t, called)
	require.Equal(t, "12", r.GetRight())

	called = false
	l := MapRight(MakeLeft[int](true), toString)
	require.False(t, called)
	require.True(t, l.GetLeft())

	n := MapRight(Either[int, bool]{}, toString)
	require.False(t, called)
	require.True(t, n.IsNone())
}

func TestMapLeft(t *testing.T) {
	called := false
	describe := func(code int) string {
		called = true
		return "code " + strconv.Itoa(code)
	}

	l := MapLeft(MakeLeft[string](5), describe)
	require.True(t, called)
	require.Equal(t, "code 5", l.GetLeft())

	called = false
	r := MapLeft(MakeRight[string, int]("ok"), describe)
	require.False(t, called)
	require.Equal(t, "ok", r.GetRight())
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{None, "none"},
		{Right, "right"},
		{Left, "left"},
		{Mode(9), "mode(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestEitherString(t *testing.T) {
	require.Equal(t, "right(1)", MakeRight[int, string](1).String())
	require.Equal(t, "left(bad)", MakeLeft[int]("bad").String())
}

func TestInvalidModePanics(t *testing.T) {
	e := Either[int, int]{mode: Mode(7)}

	require.PanicsWithError(t, "either: unexpected mode(7)", func() { _ = e.String() })
	require.Panics(t, func() { MapRight(e, func(v int) int { return v }) })
	require.Panics(t, func() { MapLeft(e, func(v int) int { return v }) })
}
