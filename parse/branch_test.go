package parse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/parse"
	"github.com/dhamidi/tokenize/primitive"
)

func TestOr(t *testing.T) {
	p := parse.Or(tag("abc"), tag("xyz"))

	c := cursor.FromString("xyz")
	require.Equal(t, "xyz", p.Parse(c).GetRight())
	require.Equal(t, 3, c.Offset())

	c = cursor.FromString("abc")
	require.Equal(t, "abc", p.Parse(c).GetRight())

	c = cursor.FromString("abz")
	require.True(t, p.Parse(c).IsLeft())
	require.Equal(t, 0, c.Offset())
}

func TestOrRewindsPartialLeft(t *testing.T) {
	// the left arm consumes "a" before failing on its second digit
	p := parse.Or(parse.Text(alpha, digit), parse.Text(alpha, alpha))

	c := cursor.FromString("ab")
	require.Equal(t, "ab", p.Parse(c).GetRight())
	require.Equal(t, 2, c.Offset())
}

func TestOrReturnsSecondFailure(t *testing.T) {
	p := parse.Or(tag("+"), parse.ConstLeft(tag("-"), "no sign"))
	require.Equal(t, "no sign", p.Parse(cursor.FromString("x")).GetLeft())
}

func TestChoice(t *testing.T) {
	p := parse.Choice(tag("let"), tag("if"), tag("else"))

	for _, input := range []string{"let", "if", "else"} {
		c := cursor.FromString(input)
		require.Equal(t, input, p.Parse(c).GetRight())
		require.Equal(t, len(input), c.Offset())
	}

	c := cursor.FromString("elif")
	require.True(t, p.Parse(c).IsLeft())
	require.Equal(t, 0, c.Offset())
}

func TestChoiceReturnsLastFailure(t *testing.T) {
	p := parse.Choice(
		parse.ConstLeft(tag("a"), 1),
		parse.ConstLeft(tag("b"), 2),
	)
	require.Equal(t, 2, p.Parse(cursor.FromString("c")).GetLeft())
}

func TestChoiceEmptyPanics(t *testing.T) {
	require.Panics(t, func() { parse.Choice[string, parse.Unit]() })
}

func TestOpt(t *testing.T) {
	p := parse.Opt(parse.Text(digit, digit), "none")

	c := cursor.FromString("12")
	require.Equal(t, "12", p.Parse(c).GetRight())

	c = cursor.FromString("1x")
	require.Equal(t, "none", p.Parse(c).GetRight())
	require.Equal(t, 0, c.Offset())
}

func TestNot(t *testing.T) {
	p := parse.Not(parse.ConstLeft(tag("--"), "comment"), "comment")

	c := cursor.FromString("-x")
	require.True(t, p.Parse(c).IsRight())
	require.Equal(t, 0, c.Offset())

	c = cursor.FromString("--")
	require.Equal(t, "comment", p.Parse(c).GetLeft())
	require.Equal(t, 0, c.Offset())
}

func TestNotUnitFailure(t *testing.T) {
	p := parse.Not(tag("--"), parse.Unit{})

	c := cursor.FromString("--x")
	require.Equal(t, parse.Unit{}, p.Parse(c).GetLeft())
	require.Equal(t, 0, c.Offset())
	require.True(t, p.Parse(cursor.FromString("x")).IsRight())
}

func TestBranchOverNumbers(t *testing.T) {
	word := parse.ConstLeft(parse.ConstRight(tag("zero"), 0), primitive.NotDigit)
	p := parse.Or(word, number)

	require.Equal(t, 0, p.Parse(cursor.FromString("zero")).GetRight())
	require.Equal(t, -4, p.Parse(cursor.FromString("-4")).GetRight())
	require.Equal(t, primitive.NotDigit, p.Parse(cursor.FromString("ten")).GetLeft())
}
