package builtins

import lval "github.com/lispy-run/lispy"

// Register binds every native function of §4.6 into env under its
// reserved name.
func Register(env *lval.Env) {
	reg := func(name string, fn lval.Builtin) {
		env.Put(name, lval.MakeBuiltin(name, fn))
	}

	reg(lval.SymList, List)
	reg(lval.SymHead, Head)
	reg(lval.SymTail, Tail)
	reg(lval.SymEval, Eval)
	reg(lval.SymJoin, Join)

	reg(lval.SymDef, Def)
	reg(lval.SymPut, Put)
	reg(lval.SymFun, Fun)
	reg(lval.SymLambda, Lambda)
	reg(lval.SymDefmacro, Defmacro)

	reg("+", Add)
	reg("-", Sub)
	reg("*", Mul)
	reg("/", Div)
	reg("%", Mod)

	reg("<", Lt)
	reg(">", Gt)
	reg("<=", Lte)
	reg(">=", Gte)
	reg("==", Eq)
	reg("!=", Ne)

	reg("&&", And)
	reg("||", Or)
	reg("!", Not)

	reg(lval.SymIf, If)

	reg(lval.SymLoad, Load)
	reg(lval.SymParse, Parse)
	reg(lval.SymRead, Read)
	reg(lval.SymError, ErrorBuiltin)
}
