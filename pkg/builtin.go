package foldeq

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

const builtinPowName = "pow"

func defineBuiltins(b *LLVMIRBuilder) {
	defineBuiltinFunc(b, builtinPowName, builtinPow)
}

type funcDefinition = func(mod *ir.Module) *ir.Func

func defineBuiltinFunc(b *LLVMIRBuilder, name string, definition funcDefinition) {
	f := definition(b.mod)
	f.SetName(name)
	b.values.Set(name, f)
}

// builtinPow is "pow(i64 base, i64 exp) i64". The exponent is truncated to
// i32 and the product wraps, as constant folding does.
func builtinPow(mod *ir.Module) *ir.Func {
	f := mod.NewFunc("", types.I64, ir.NewParam("base", types.I64), ir.NewParam("exp", types.I64))
	base, exp := f.Params[0], f.Params[1]

	entry := f.NewBlock("entry")
	loop := f.NewBlock("loop")
	body := f.NewBlock("body")
	done := f.NewBlock("done")

	n := entry.NewTrunc(exp, types.I32)
	entry.NewBr(loop)

	acc := loop.NewPhi(ir.NewIncoming(constant.NewInt(types.I64, 1), entry))
	i := loop.NewPhi(ir.NewIncoming(constant.NewInt(types.I32, 0), entry))
	more := loop.NewICmp(enum.IPredULT, i, n)
	loop.NewCondBr(more, body, done)

	next := body.NewMul(acc, base)
	inc := body.NewAdd(i, constant.NewInt(types.I32, 1))
	body.NewBr(loop)

	acc.Incs = append(acc.Incs, ir.NewIncoming(next, body))
	i.Incs = append(i.Incs, ir.NewIncoming(inc, body))

	done.NewRet(acc)

	return f
}
