package builtins

import lval "github.com/lispy-run/lispy"

// And implements && over any number of Boolean arguments, short-circuiting
// at the first false.
func And(env *lval.Env, args *lval.SExpr) lval.Value {
	for i := range args.Cells {
		if err := assertType("&&", args, i, "Boolean"); err != nil {
			return err
		}
	}
	result := true
	for _, c := range args.Cells {
		result = result && bool(c.(lval.Boolean))
		if !result {
			break
		}
	}
	return lval.MakeBoolean(result)
}

// Or implements || over any number of Boolean arguments, short-circuiting
// at the first true.
func Or(env *lval.Env, args *lval.SExpr) lval.Value {
	for i := range args.Cells {
		if err := assertType("||", args, i, "Boolean"); err != nil {
			return err
		}
	}
	result := false
	for _, c := range args.Cells {
		result = result || bool(c.(lval.Boolean))
		if result {
			break
		}
	}
	return lval.MakeBoolean(result)
}

// Not implements ! over a single Boolean argument.
func Not(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("!", args, 1); err != nil {
		return err
	}
	if err := assertType("!", args, 0, "Boolean"); err != nil {
		return err
	}
	return lval.MakeBoolean(!bool(args.Cells[0].(lval.Boolean)))
}
