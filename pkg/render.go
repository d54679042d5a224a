package foldeq

import (
	"strconv"
	"strings"
)

// Rendering never adds parentheses, so it loses grouping: the output is for
// reading, not for parsing back.

func (c Constant) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

func (v Variable) String() string {
	return string(v)
}

func (e *BinaryExpr) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *UnaryExpr) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (s Statement) String() string {
	var b strings.Builder
	render(&b, s.Left)
	b.WriteString(" = ")
	render(&b, s.Right)
	return b.String()
}

// Render returns the infix text of e.
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

func render(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *BinaryExpr:
		e.render(b)
	case *UnaryExpr:
		e.render(b)
	default:
		b.WriteString(e.String())
	}
}

func (e *BinaryExpr) render(b *strings.Builder) {
	render(b, e.Op1)
	b.WriteByte(' ')
	b.WriteString(string(e.Operation))
	b.WriteByte(' ')
	render(b, e.Op2)
}

func (e *UnaryExpr) render(b *strings.Builder) {
	b.WriteString(string(e.Operation))
	render(b, e.Operand)
}
