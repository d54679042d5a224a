package foldeq

// Operation tags a binary node, or a unary node when it is Addition or
// Subtraction. Its value is the symbol it renders as.
type Operation string

const (
	Addition       Operation = "+"
	Subtraction    Operation = "-"
	Multiplication Operation = "*"
	Division       Operation = "/"
	Exponentiation Operation = "^"
)

// Expr is a node of an equation side. The set of implementations is closed:
// Constant, Variable, *BinaryExpr and *UnaryExpr.
type Expr interface {
	String() string
	expr()
}

// Number is a leaf: either a Constant or a Variable.
type Number interface {
	Expr
	number()
}

// Constant is a non-negative integer literal.
type Constant uint64

// Variable is a single-letter symbolic name. It is never looked up.
type Variable rune

type BinaryExpr struct {
	Operation Operation
	Op1       Expr
	Op2       Expr
}

// UnaryExpr is a sign applied to its operand. Operation is always Addition
// or Subtraction.
type UnaryExpr struct {
	Operation Operation
	Operand   Expr
}

func (Constant) expr()    {}
func (Variable) expr()    {}
func (*BinaryExpr) expr() {}
func (*UnaryExpr) expr()  {}

func (Constant) number() {}
func (Variable) number() {}

// Statement is an equation "Left = Right". Nothing relates the two sides.
type Statement struct {
	Left  Expr
	Right Expr
}

func newUnary(op Operation, operand Expr) *UnaryExpr {
	if op != Addition && op != Subtraction {
		panic("foldeq: unary node with operation " + string(op))
	}

	return &UnaryExpr{
		Operation: op,
		Operand:   operand,
	}
}
