package test

import (
	"math/rand"
	"strings"
)

const (
	validOperators = "+-*/^"
	validVariables = "abcxyzé"
)

// GetRandomExpression returns a well-formed expression with roughly size
// operands.
func GetRandomExpression(size int) string {
	var b strings.Builder
	writeExpression(&b, size)
	return b.String()
}

// GetRandomStatement returns a well-formed "expr = expr" with roughly size
// operands on each side.
func GetRandomStatement(size int) string {
	return GetRandomExpression(size) + " = " + GetRandomExpression(size)
}

// GetRandomStatements returns n statements, one per line.
func GetRandomStatements(n, size int) string {
	stmts := make([]string, n)
	for i := range stmts {
		stmts[i] = GetRandomStatement(size)
	}

	return strings.Join(stmts, "\n")
}

func writeExpression(b *strings.Builder, size int) {
	for i := 0; i < size; i++ {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteByte(validOperators[rand.Intn(len(validOperators))])
			b.WriteByte(' ')
		}

		writeOperand(b, size)
	}
}

func writeOperand(b *strings.Builder, size int) {
	switch rand.Intn(6) {
	case 0:
		b.WriteByte('-')
		writeOperand(b, size)
	case 1:
		if size > 1 {
			b.WriteByte('(')
			writeExpression(b, size/2)
			b.WriteByte(')')
			return
		}
		fallthrough
	case 2, 3:
		vars := []rune(validVariables)
		b.WriteRune(vars[rand.Intn(len(vars))])
	default:
		// Small values keep exponentiation readable.
		b.WriteString(strings.Repeat("1", 1+rand.Intn(2)))
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
}
