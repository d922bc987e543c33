package builtins

import (
	"strings"

	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/eval"
)

// List converts its argument S-Expression into a Q-Expression without
// evaluating anything; it is the only builtin every bracket-list literal
// resolves to at tree-ingestion time.
func List(env *lval.Env, args *lval.SExpr) lval.Value {
	return lval.MakeQExprOf(args.Cells...)
}

// Head returns a single-element Q-Expression holding the first element of
// a Q-Expression argument, or the first byte of a String argument.
func Head(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("head", args, 1); err != nil {
		return err
	}
	switch v := args.Cells[0].(type) {
	case *lval.QExpr:
		if v.Len() == 0 {
			return lval.MakeError("Function 'head' passed {}")
		}
		return lval.MakeQExprOf(v.Cells[0])
	case lval.String:
		if v.Len() == 0 {
			return lval.MakeError("Function 'head' passed empty string")
		}
		return lval.MakeStringBytes(v.Bytes()[:1])
	default:
		return lval.Errorf("Function 'head' passed incorrect type. Got %s, Expected string or Q-Expression.", v.Tag())
	}
}

// Tail returns a Q-Expression with its first element dropped, or a String
// with its first byte dropped.
func Tail(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("tail", args, 1); err != nil {
		return err
	}
	switch v := args.Cells[0].(type) {
	case *lval.QExpr:
		if v.Len() == 0 {
			return lval.MakeError("Function 'tail' passed {}")
		}
		return lval.MakeQExprOf(v.Cells[1:]...)
	case lval.String:
		if v.Len() == 0 {
			return lval.MakeError("Function 'tail' passed empty string")
		}
		return lval.MakeStringBytes(v.Bytes()[1:])
	default:
		return lval.Errorf("Function 'tail' passed incorrect type. Got %s, Expected string or Q-Expression.", v.Tag())
	}
}

// Eval re-enters the evaluator on the contents of its one S- or
// Q-Expression argument, treated as an S-Expression.
func Eval(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("eval", args, 1); err != nil {
		return err
	}
	if err := assertExpr("eval", args, 0); err != nil {
		return err
	}
	cells, _ := exprCells(args.Cells[0])
	return eval.Eval(env, lval.MakeSExprOf(cells...))
}

// Join concatenates its arguments left to right. Two strings concatenate
// as bytes; anything else is treated as a Q-Expression (a bare string
// joined with a Q-Expression is first wrapped as a single-element list).
func Join(env *lval.Env, args *lval.SExpr) lval.Value {
	for _, c := range args.Cells {
		switch c.(type) {
		case *lval.QExpr, lval.String:
		default:
			return lval.Errorf("Function 'join' cannot operate on type: %s", c.Tag())
		}
	}
	if args.Len() == 0 {
		return lval.MakeQExpr()
	}
	result := args.Cells[0]
	for _, c := range args.Cells[1:] {
		result = joinPair(result, c)
	}
	return result
}

func joinPair(x, y lval.Value) lval.Value {
	xs, xIsStr := x.(lval.String)
	ys, yIsStr := y.(lval.String)
	if xIsStr && yIsStr {
		var sb strings.Builder
		sb.Write(xs.Bytes())
		sb.Write(ys.Bytes())
		return lval.MakeString(sb.String())
	}
	xq := wrapQExpr(x)
	yq := wrapQExpr(y)
	joined := make([]lval.Value, 0, xq.Len()+yq.Len())
	joined = append(joined, xq.Cells...)
	joined = append(joined, yq.Cells...)
	return lval.MakeQExprOf(joined...)
}

func wrapQExpr(v lval.Value) *lval.QExpr {
	if q, ok := v.(*lval.QExpr); ok {
		return q
	}
	return lval.MakeQExprOf(v)
}
