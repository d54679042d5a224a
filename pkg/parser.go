package foldeq

import (
	"unicode"
	"unicode/utf8"
)

// Grammar:
//
//	statement := expression '=' expression
//	expression := binary(loosest level)
//	binary(L) := binary(L.Next) ( op_in_L binary(L) )?
//	unary := ('+' | '-') unary | low
//	low := '(' expression ')' | number | variable
//	number := digit+
//	variable := letter
//
// Every binary level is right-associative: 8 - 3 - 1 is 8 - (3 - 1).

// ParserOption configures a Parser.
type ParserOption func(p *Parser)

// WithTable replaces the default precedence table.
func WithTable(table *Level) ParserOption {
	return func(p *Parser) {
		p.table = table
	}
}

// Parser is a recursive-descent parser driven by a precedence table. A
// Parser may be reused but not shared between goroutines.
type Parser struct {
	table *Level

	src  string
	rest string
}

func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		table: DefaultTable,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ParseStatement parses "expr = expr". The whole input must be consumed.
func (p *Parser) ParseStatement(input string) (*Statement, error) {
	p.reset(input)

	left, err := p.expr()
	if err != nil {
		return nil, err
	}

	if err := p.expect('=', "'='"); err != nil {
		return nil, err
	}

	right, err := p.expr()
	if err != nil {
		return nil, err
	}

	if err := p.end(); err != nil {
		return nil, err
	}

	return &Statement{
		Left:  left,
		Right: right,
	}, nil
}

// ParseExpression parses a single expression with no '='. The whole input
// must be consumed.
func (p *Parser) ParseExpression(input string) (Expr, error) {
	p.reset(input)

	e, err := p.expr()
	if err != nil {
		return nil, err
	}

	if err := p.end(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseStatement parses input with the default table.
func ParseStatement(input string) (*Statement, error) {
	return NewParser().ParseStatement(input)
}

// ParseExpression parses input with the default table.
func ParseExpression(input string) (Expr, error) {
	return NewParser().ParseExpression(input)
}

func (p *Parser) reset(input string) {
	p.src = input
	p.rest = skipSpace(input)
}

func (p *Parser) peek() (rune, bool) {
	r, _, ok := pull(p.rest)
	return r, ok
}

func (p *Parser) next() (rune, bool) {
	r, rest, ok := pull(p.rest)
	if ok {
		p.rest = rest
	}

	return r, ok
}

// col is the column of the next significant rune.
func (p *Parser) col() int {
	consumed := len(p.src) - len(skipSpace(p.rest))
	return utf8.RuneCountInString(p.src[:consumed]) + 1
}

func (p *Parser) errorf(kind error, expected string, found rune) *ParseError {
	return &ParseError{
		Kind:     kind,
		Col:      p.col(),
		Expected: expected,
		Found:    found,
	}
}

func (p *Parser) expect(want rune, what string) error {
	col := p.col()
	r, ok := p.next()
	if !ok {
		return p.errorf(ErrUnexpectedEnd, what, EOF)
	}

	if r != want {
		err := p.errorf(ErrExpectedToken, what, r)
		err.Col = col
		return err
	}

	return nil
}

func (p *Parser) end() error {
	if rest := skipSpace(p.rest); rest != "" {
		err := p.errorf(ErrTrailingInput, "end of input", EOF)
		err.Found, _ = utf8.DecodeRuneInString(rest)
		err.Rest = rest
		return err
	}

	return nil
}

func (p *Parser) expr() (Expr, error) {
	return p.binary(p.table)
}

func (p *Parser) binary(level *Level) (Expr, error) {
	if level == nil {
		return p.unary()
	}

	lhs, err := p.binary(level.Next)
	if err != nil {
		return nil, err
	}

	r, ok := p.peek()
	if !ok {
		return lhs, nil
	}

	op, ok := level.Lookup(r)
	if !ok {
		return lhs, nil
	}
	p.next()

	// Recursing into the same level makes the operator right-associative
	rhs, err := p.binary(level)
	if err != nil {
		return nil, err
	}

	return &BinaryExpr{
		Operation: op,
		Op1:       lhs,
		Op2:       rhs,
	}, nil
}

func (p *Parser) unary() (Expr, error) {
	r, ok := p.peek()
	if !ok {
		return nil, p.errorf(ErrUnexpectedEnd, "an expression", EOF)
	}

	switch r {
	case '+', '-':
		p.next()

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		op := Addition
		if r == '-' {
			op = Subtraction
		}

		return newUnary(op, operand), nil
	}

	return p.low()
}

func (p *Parser) low() (Expr, error) {
	r, ok := p.peek()
	if !ok {
		return nil, p.errorf(ErrUnexpectedEnd, "an expression", EOF)
	}

	switch {
	case r == '(':
		p.next()

		e, err := p.expr()
		if err != nil {
			return nil, err
		}

		if err := p.expect(')', "')'"); err != nil {
			return nil, err
		}

		return e, nil
	case isDigit(r):
		var value uint64
		value, p.rest = scanNumber(p.rest)
		return Constant(value), nil
	case unicode.IsLetter(r):
		p.next()
		return Variable(r), nil
	}

	return nil, p.errorf(ErrUnexpectedCharacter, "an expression", r)
}
