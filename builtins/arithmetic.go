package builtins

import lval "github.com/lispy-run/lispy"

// arith implements the shared numeric-tower reduction behind +, -, *, /
// and %: operands combine pairwise, promoting to Float as soon as either
// side of a given pair is a Float. A lone argument to - negates it.
//
// Division and modulus check the tag of the actual zero-valued divisor,
// not a hardcoded Integer check, so a Float zero divisor is caught too.
func arith(name string, args *lval.SExpr) lval.Value {
	for i, c := range args.Cells {
		if !lval.IsNumber(c) {
			return lval.Errorf("Function %s passed incorrect type for argument %d", name, i)
		}
	}
	if args.Len() == 0 {
		return lval.Errorf("Function %s passed no arguments", name)
	}

	x := args.Pop(0)
	if name == "-" && args.Len() == 0 {
		switch n := x.(type) {
		case lval.Integer:
			return -n
		case lval.Float:
			return -n
		}
	}

	for args.Len() > 0 {
		y := args.Pop(0)
		xi, xIsInt := x.(lval.Integer)
		yi, yIsInt := y.(lval.Integer)
		bothInt := xIsInt && yIsInt

		switch name {
		case "+":
			if bothInt {
				x = xi + yi
			} else {
				x = lval.MakeFloat(lval.AsFloat(x) + lval.AsFloat(y))
			}
		case "-":
			if bothInt {
				x = xi - yi
			} else {
				x = lval.MakeFloat(lval.AsFloat(x) - lval.AsFloat(y))
			}
		case "*":
			if bothInt {
				x = xi * yi
			} else {
				x = lval.MakeFloat(lval.AsFloat(x) * lval.AsFloat(y))
			}
		case "/":
			if isZero(y) {
				return lval.MakeError("Division by zero")
			}
			if bothInt {
				x = xi / yi
			} else {
				x = lval.MakeFloat(lval.AsFloat(x) / lval.AsFloat(y))
			}
		case "%":
			if isZero(y) {
				return lval.MakeError("Division by zero")
			}
			if !bothInt {
				return lval.MakeError("Cannot perform floating point modulus")
			}
			x = xi % yi
		}
	}
	return x
}

func isZero(v lval.Value) bool {
	switch n := v.(type) {
	case lval.Integer:
		return n == 0
	case lval.Float:
		return n == 0
	default:
		return false
	}
}

func Add(env *lval.Env, args *lval.SExpr) lval.Value { return arith("+", args) }
func Sub(env *lval.Env, args *lval.SExpr) lval.Value { return arith("-", args) }
func Mul(env *lval.Env, args *lval.SExpr) lval.Value { return arith("*", args) }
func Div(env *lval.Env, args *lval.SExpr) lval.Value { return arith("/", args) }
func Mod(env *lval.Env, args *lval.SExpr) lval.Value { return arith("%", args) }
