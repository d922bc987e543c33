package eval

import (
	lval "github.com/lispy-run/lispy"
)

// Eval reduces v to its value under env, per §4.4. Symbols resolve through
// the environment chain; S-Expressions reduce via evalSExpr; every other
// variant, including QExpr, is already in normal form and evaluates to
// itself.
func Eval(env *lval.Env, v lval.Value) lval.Value {
	switch x := v.(type) {
	case lval.Symbol:
		return env.Lookup(x.Name())
	case *lval.SExpr:
		return evalSExpr(env, x)
	default:
		return v
	}
}

// evalSExpr implements the S-Expression reduction rule of §4.4.
func evalSExpr(env *lval.Env, sx *lval.SExpr) lval.Value {
	// Walk children left-to-right, evaluating each in place. If a child was,
	// before evaluation, the symbol `defmacro`, evaluate it too (yielding the
	// defmacro builtin) and then stop: everything after it is left as a raw,
	// unevaluated form so the macro definer can inspect it directly.
	for i, c := range sx.Cells {
		isMacro := false
		if sym, ok := c.(lval.Symbol); ok && sym.Name() == lval.SymDefmacro {
			isMacro = true
		}
		sx.Cells[i] = Eval(env, c)
		if isMacro {
			break
		}
	}

	for _, c := range sx.Cells {
		if e, ok := c.(*lval.Error); ok {
			return e
		}
	}

	if len(sx.Cells) == 0 {
		return sx
	}
	if len(sx.Cells) == 1 {
		return Eval(env, sx.Cells[0])
	}

	f := sx.Pop(0)
	fn, ok := f.(*lval.Function)
	if !ok {
		return lval.Errorf("S-Expression starts with incorrect type. Got %s, Expected %s.", f.Tag(), "Function")
	}
	return Call(env, fn, sx)
}
