// Package builtins implements the native function table of §4.6, bound
// into a root environment by Register.
package builtins

import lval "github.com/lispy-run/lispy"

func assertNum(name string, args *lval.SExpr, n int) *lval.Error {
	if args.Len() != n {
		return lval.Errorf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, args.Len(), n)
	}
	return nil
}

func assertType(name string, args *lval.SExpr, i int, tag string) *lval.Error {
	if args.Cells[i].Tag() != tag {
		return lval.Errorf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.", name, i, args.Cells[i].Tag(), tag)
	}
	return nil
}

func isExprTag(tag string) bool { return tag == "S-Expression" || tag == "Q-Expression" }

func assertExpr(name string, args *lval.SExpr, i int) *lval.Error {
	if !isExprTag(args.Cells[i].Tag()) {
		return lval.Errorf("Function '%s' passed incorrect type for argument %d. Got %s, Expected expression.", name, i, args.Cells[i].Tag())
	}
	return nil
}

// exprCells returns the children of v, whether it is an S-Expression or a
// Q-Expression; several builtins (eval, if) accept either.
func exprCells(v lval.Value) ([]lval.Value, bool) {
	switch x := v.(type) {
	case *lval.SExpr:
		return x.Cells, true
	case *lval.QExpr:
		return x.Cells, true
	default:
		return nil, false
	}
}

// coerceQExpr returns v as a Q-Expression, converting an S-Expression of the
// same shape; \ and fun accept either bracket style for formals and body.
func coerceQExpr(v lval.Value) (*lval.QExpr, bool) {
	switch x := v.(type) {
	case *lval.QExpr:
		return x, true
	case *lval.SExpr:
		return lval.MakeQExprOf(x.Cells...), true
	default:
		return nil, false
	}
}
