package builtins

import lval "github.com/lispy-run/lispy"

// ord implements the shared numeric-ordering reduction behind <, >, <=
// and >=: both operands must be numbers; if either is a Float the
// comparison promotes both to Float.
func ord(name string, args *lval.SExpr) lval.Value {
	if err := assertNum(name, args, 2); err != nil {
		return err
	}
	for i, c := range args.Cells {
		if !lval.IsNumber(c) {
			return lval.Errorf("Function %s passed incorrect type for argument %d", name, i)
		}
	}

	x, y := args.Cells[0], args.Cells[1]
	xi, xIsInt := x.(lval.Integer)
	yi, yIsInt := y.(lval.Integer)

	var r bool
	if xIsInt && yIsInt {
		switch name {
		case ">":
			r = xi > yi
		case "<":
			r = xi < yi
		case ">=":
			r = xi >= yi
		case "<=":
			r = xi <= yi
		}
	} else {
		xf, yf := lval.AsFloat(x), lval.AsFloat(y)
		switch name {
		case ">":
			r = xf > yf
		case "<":
			r = xf < yf
		case ">=":
			r = xf >= yf
		case "<=":
			r = xf <= yf
		}
	}
	return lval.MakeBoolean(r)
}

func Gt(env *lval.Env, args *lval.SExpr) lval.Value  { return ord(">", args) }
func Lt(env *lval.Env, args *lval.SExpr) lval.Value  { return ord("<", args) }
func Gte(env *lval.Env, args *lval.SExpr) lval.Value { return ord(">=", args) }
func Lte(env *lval.Env, args *lval.SExpr) lval.Value { return ord("<=", args) }

// Eq and Ne implement == and != via the structural-equality rules of §4.6.5.
func Eq(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("==", args, 2); err != nil {
		return err
	}
	return lval.MakeBoolean(lval.Equal(args.Cells[0], args.Cells[1]))
}

func Ne(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("!=", args, 2); err != nil {
		return err
	}
	return lval.MakeBoolean(!lval.Equal(args.Cells[0], args.Cells[1]))
}
