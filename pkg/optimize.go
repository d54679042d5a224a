package foldeq

// Optimize folds constant subtrees bottom-up and returns a new tree; e is
// left untouched.
//
// Division is never folded, and unary nodes are kept around their operand
// even when it folds to a constant. A negative difference becomes
// -Constant(magnitude); Constant is never negative.
func Optimize(e Expr) Expr {
	switch e := e.(type) {
	case Constant, Variable:
		return e
	case *UnaryExpr:
		return newUnary(e.Operation, Optimize(e.Operand))
	case *BinaryExpr:
		lhs := Optimize(e.Op1)
		rhs := Optimize(e.Op2)

		x, lok := lhs.(Constant)
		y, rok := rhs.(Constant)
		if lok && rok {
			if folded := fold(e.Operation, uint64(x), uint64(y)); folded != nil {
				return folded
			}
		}

		return &BinaryExpr{
			Operation: e.Operation,
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	panic("foldeq: optimizing unknown expression")
}

// Optimize returns a statement with both sides optimized.
func (s Statement) Optimize() *Statement {
	return &Statement{
		Left:  Optimize(s.Left),
		Right: Optimize(s.Right),
	}
}

// fold evaluates "x op y", or returns nil when op does not fold.
func fold(op Operation, x, y uint64) Expr {
	switch op {
	case Addition:
		return Constant(x + y)
	case Subtraction:
		if x < y {
			return newUnary(Subtraction, Constant(y-x))
		}

		return Constant(x - y)
	case Multiplication:
		return Constant(x * y)
	case Exponentiation:
		return Constant(ipow(x, uint32(y)))
	}

	return nil
}

// ipow is x^y modulo 2^64.
func ipow(x uint64, y uint32) uint64 {
	r := uint64(1)
	for y > 0 {
		if y&1 == 1 {
			r *= x
		}
		x *= x
		y >>= 1
	}

	return r
}
