package foldeq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	cases := []struct {
		data   Expr
		expect string
	}{
		{Constant(0), "0"},
		{Constant(18446744073709551615), "18446744073709551615"},
		{Variable('x'), "x"},
		{Variable('é'), "é"},
		{bin(Division, Constant(6), Constant(3)), "6 / 3"},
		{bin(Exponentiation, Variable('x'), Constant(2)), "x ^ 2"},
		{un(Subtraction, un(Subtraction, Constant(5))), "--5"},
		{un(Addition, Variable('y')), "+y"},
		// Grouping is lost.
		{un(Subtraction, bin(Addition, Constant(2), Constant(3))), "-2 + 3"},
		{bin(Multiplication, bin(Addition, Constant(2), Constant(3)), Constant(4)), "2 + 3 * 4"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, Render(c.data))
		assert.Equal(t, c.expect, c.data.String())
	}
}

func TestRenderStatement(t *testing.T) {
	stmt := Statement{
		Left:  bin(Addition, Constant(2), bin(Multiplication, Constant(3), Constant(4))),
		Right: Variable('x'),
	}

	assert.Equal(t, "2 + 3 * 4 = x", stmt.String())
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		data   string
		expect string
	}{
		{"(2 + 3) * x = 2^10 - 3 - 5", "5 * x = 1024 - -2"},
		{"2^10 = x", "1024 = x"},
		{"--5 = x", "--5 = x"},
		{"a/b = 10/5", "a / b = 10 / 5"},
		{"3 - 5 = y * (1 + 1)", "-2 = y * 2"},
	}

	for _, c := range cases {
		stmt, err := ParseStatement(c.data)
		require.NoError(t, err, "parsing %q", c.data)

		assert.Equal(t, c.expect, stmt.Optimize().String())
	}
}

func TestDump(t *testing.T) {
	stmt, err := ParseStatement("-x = 2 / 3")
	require.NoError(t, err)

	dump := Sdump(stmt)
	for _, want := range []string{"foldeq.Statement", "foldeq.UnaryExpr", "foldeq.BinaryExpr", "Operation"} {
		assert.Contains(t, dump, want)
	}
	assert.NotContains(t, dump, "0x", "pointer addresses make dumps unstable")
	assert.NotContains(t, dump, "-x = 2 / 3")

	var b strings.Builder
	Dump(&b, stmt)
	assert.Equal(t, dump, b.String())
}
