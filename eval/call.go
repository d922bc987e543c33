package eval

import (
	lval "github.com/lispy-run/lispy"
)

// Call applies f to args in env, per the call protocol of §4.5. A builtin
// simply runs against the supplied S-Expression. A lambda binds its formals
// against the supplied arguments one at a time; running out of arguments
// before every formal is bound yields a new Function recording the partial
// binding (currying), while supplying more arguments than formals (once any
// trailing `&` has absorbed the rest) is an error.
func Call(env *lval.Env, f *lval.Function, args *lval.SExpr) lval.Value {
	if f.IsBuiltin() {
		return f.Call(env, args)
	}

	given := args.Len()
	total := f.Formals.Len()

	for args.Len() > 0 {
		if f.Formals.Len() == 0 {
			return lval.Errorf("Function passed too many arguments. Got %d, Expected %d.", given, total)
		}

		sym := f.Formals.Pop(0)
		name, ok := sym.(lval.Symbol)
		if !ok {
			return lval.Errorf("malformed formal parameter list")
		}

		if name.Name() == lval.SymAmp {
			if f.Formals.Len() != 1 {
				return lval.Errorf("Function format invalid. Symbol '&' not followed by a single symbol.")
			}
			nsym, ok := f.Formals.Pop(0).(lval.Symbol)
			if !ok {
				return lval.Errorf("malformed formal parameter list")
			}
			rest := lval.MakeQExprOf(args.Cells...)
			f.Env.Put(nsym.Name(), rest)
			break
		}

		val := args.Pop(0)
		f.Env.Put(name.Name(), val)
	}

	// A trailing, unbound `&formal` with no remaining arguments binds to an
	// empty list.
	if f.Formals.Len() > 0 {
		if head, ok := f.Formals.Cells[0].(lval.Symbol); ok && head.Name() == lval.SymAmp {
			if f.Formals.Len() != 2 {
				return lval.Errorf("Function format invalid. Symbol '&' not followed by a single symbol.")
			}
			f.Formals.Pop(0)
			sym := f.Formals.Pop(0).(lval.Symbol)
			f.Env.Put(sym.Name(), lval.MakeQExpr())
		}
	}

	if f.Formals.Len() == 0 {
		f.Env.SetParent(env)
		return Eval(f.Env, lval.MakeSExprOf(f.Body.Copy().(*lval.QExpr).Cells...))
	}

	return f.Copy()
}
