package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/parse"
	"github.com/dhamidi/tokenize/primitive"
)

func TestFluentP(t *testing.T) {
	kw := parse.Of(tag("let")).
		Or(tag("var")).
		Map(strings.ToUpper).
		ThenSkip(parse.EraseRight(tag(" ")))

	c := cursor.FromString("var x")
	require.Equal(t, "VAR", kw.Parse(c).GetRight())
	require.Equal(t, 4, c.Offset())

	require.Equal(t, "-", kw.Opt("-").Parse(cursor.FromString("x")).GetRight())
}

func TestFluentErasure(t *testing.T) {
	p := parse.Of(number).MapErr(func(primitive.NumberError) primitive.NumberError {
		return primitive.Overflow
	})
	require.Equal(t, primitive.Overflow, p.Parse(cursor.FromString("x")).GetLeft())

	require.Equal(t, 9, parse.Of(number).ConstRight(9).Parse(cursor.FromString("1")).GetRight())
	require.Equal(t, primitive.Underflow,
		parse.Of(number).ConstLeft(primitive.Underflow).Parse(cursor.FromString("x")).GetLeft())
	require.True(t, parse.Of(number).EraseRight().Parse(cursor.FromString("1")).IsRight())
	require.True(t, parse.Of(number).EraseLeft().Parse(cursor.FromString("x")).IsLeft())
	require.True(t, parse.Of(number).EraseBoth().Parse(cursor.FromString("1")).IsRight())
	require.Equal(t, "+07", parse.Of(number).Recognize().Parse(cursor.FromString("+07,")).GetRight())
}

func TestFluentRepetition(t *testing.T) {
	d := parse.Of(digit)

	require.Equal(t, []byte("12"), d.Then(digit).Parse(cursor.FromString("12")).GetRight())
	require.Equal(t, []byte("123"), d.Many1().Parse(cursor.FromString("123")).GetRight())
	require.Empty(t, d.Many0().Parse(cursor.FromString("x")).GetRight())
	require.Equal(t, []byte("12"), d.Count(2).Parse(cursor.FromString("123")).GetRight())
	require.Equal(t, []byte("1"), d.Repeat(1, 1).Parse(cursor.FromString("12")).GetRight())

	located := d.Positioned().Parse(cursor.FromString("7")).GetRight()
	require.Equal(t, parse.Position{Begin: 0, End: 1}, located.Pos)
}

func TestChars(t *testing.T) {
	ident := parse.TextOf(alpha).Then(parse.Many0String(parse.Parser[byte, parse.Unit](primitive.Alnum)))
	require.Equal(t, "x42", ident.Parse(cursor.FromString("x42 ")).GetRight())

	hex := parse.TextOf(tag("0x")).ThenChar(digit).Many1()
	require.Equal(t, "0x10x2", hex.Parse(cursor.FromString("0x10x2")).GetRight())

	sign := parse.TextOf(tag("-")).Or(tag("+")).Opt()
	require.Equal(t, "", sign.Parse(cursor.FromString("1")).GetRight())
	require.Equal(t, "+", sign.Parse(cursor.FromString("+1")).GetRight())

	pair := parse.TextOf(digit).Repeat(2, 2).Recognize().P().Map(strings.ToUpper)
	require.Equal(t, "12", pair.Parse(cursor.FromString("123")).GetRight())
	require.True(t, parse.TextOf(digit).Many0().Parse(cursor.FromString("")).IsRight())
}
