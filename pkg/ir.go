package foldeq

import (
	"github.com/cockroachdb/errors"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Inherit(t2 *ValueLookup) {
	for k, v := range t2.vals {
		l.Set(k, v)
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

// LLVMIRBuilder lowers expressions to i64 arithmetic. Variables become
// function parameters.
type LLVMIRBuilder struct {
	mod    *ir.Module
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}

	defineBuiltins(builder)
	return builder
}

// function defines "name(params...) i64" returning the value of e.
func (b *LLVMIRBuilder) function(name string, params []Variable, e Expr) error {
	ps := make([]*ir.Param, len(params))
	for i, v := range params {
		ps[i] = ir.NewParam(string(v), types.I64)
	}

	f := b.mod.NewFunc(name, types.I64, ps...)

	prevVals := b.values
	b.values = NewValueLookup()
	b.values.Inherit(prevVals)
	defer func() {
		b.values = prevVals
	}()

	for i, v := range params {
		b.values.Set(string(v), f.Params[i])
	}

	block := f.NewBlock("")
	v, ins, err := b.recursiveLoad(e)
	if err != nil {
		return errors.Wrapf(err, "lowering @%s", name)
	}

	block.Insts = append(block.Insts, ins...)
	block.NewRet(v)
	return nil
}

func (b *LLVMIRBuilder) recursiveLoad(expr Expr) (value.Value, []ir.Instruction, error) {
	switch e := expr.(type) {
	case Constant:
		// i64 has no signedness; the bits are the same.
		return constant.NewInt(types.I64, int64(e)), nil, nil
	case Variable:
		v, ok := b.values.Get(string(e))
		if !ok {
			return nil, nil, errors.Newf("undefined variable %q", string(e))
		}

		return v, nil, nil
	case *BinaryExpr:
		return b.binaryExpression(e)
	case *UnaryExpr:
		return b.unaryExpression(e)
	}

	return nil, nil, errors.AssertionFailedf("unexpected expression %T", expr)
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (value.Value, []ir.Instruction, error) {
	v1, i1, err := b.recursiveLoad(expr.Op1)
	if err != nil {
		return nil, nil, err
	}

	v2, i2, err := b.recursiveLoad(expr.Op2)
	if err != nil {
		return nil, nil, err
	}
	ins := append(i1, i2...)

	var op ir.Instruction
	var res value.Value
	switch expr.Operation {
	case Addition:
		add := ir.NewAdd(v1, v2)
		op, res = add, add
	case Subtraction:
		sub := ir.NewSub(v1, v2)
		op, res = sub, sub
	case Multiplication:
		mul := ir.NewMul(v1, v2)
		op, res = mul, mul
	case Division:
		div := ir.NewUDiv(v1, v2)
		op, res = div, div
	case Exponentiation:
		pow, _ := b.values.Get(builtinPowName)
		call := ir.NewCall(pow, v1, v2)
		op, res = call, call
	default:
		return nil, nil, errors.AssertionFailedf("unexpected binary op: %s", expr.Operation)
	}

	return res, append(ins, op), nil
}

func (b *LLVMIRBuilder) unaryExpression(expr *UnaryExpr) (value.Value, []ir.Instruction, error) {
	v, ins, err := b.recursiveLoad(expr.Operand)
	if err != nil {
		return nil, nil, err
	}

	switch expr.Operation {
	case Addition:
		return v, ins, nil
	case Subtraction:
		zero := constant.NewInt(types.I64, 0)
		op := ir.NewSub(zero, v)
		return op, append(ins, op), nil
	}

	return nil, nil, errors.AssertionFailedf("unexpected unary op: %s", expr.Operation)
}

// LLVMGenerator lowers a statement into a module holding @left and @right,
// both taking the statement's variables in sorted order.
type LLVMGenerator struct {
	stmt *Statement
}

func NewLLVMGenerator(stmt *Statement) *LLVMGenerator {
	return &LLVMGenerator{
		stmt: stmt,
	}
}

func (g LLVMGenerator) Do() (*ir.Module, error) {
	builder := NewLLVMIRBuilder()
	params := SymbolsOf(g.stmt).Sorted()

	if err := builder.function("left", params, g.stmt.Left); err != nil {
		return nil, err
	}

	if err := builder.function("right", params, g.stmt.Right); err != nil {
		return nil, err
	}

	return builder.mod, nil
}
