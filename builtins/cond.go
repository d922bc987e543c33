package builtins

import (
	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/eval"
)

// If evaluates its second argument when the first (a Boolean) is true, and
// its third argument otherwise. Both branches are expressions (S- or
// Q-Expression syntax) evaluated as S-Expressions, so `if` bodies written
// with either bracket style behave the same.
func If(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("if", args, 3); err != nil {
		return err
	}
	if err := assertType("if", args, 0, "Boolean"); err != nil {
		return err
	}
	if err := assertExpr("if", args, 1); err != nil {
		return err
	}
	if err := assertExpr("if", args, 2); err != nil {
		return err
	}

	branch := args.Cells[2]
	if bool(args.Cells[0].(lval.Boolean)) {
		branch = args.Cells[1]
	}
	cells, _ := exprCells(branch)
	return eval.Eval(env, lval.MakeSExprOf(cells...))
}
