package builtins

import (
	lval "github.com/lispy-run/lispy"
	"t73f.de/r/zero/set"
)

// bindVar implements the shared binding reduction behind def and =: the
// first argument is a Q-Expression of symbol names, bound one-for-one to
// the remaining arguments. def always targets the root environment; =
// targets env directly.
func bindVar(env *lval.Env, args *lval.SExpr, name string, global bool) lval.Value {
	if err := assertType(name, args, 0, "Q-Expression"); err != nil {
		return err
	}
	syms := args.Cells[0].(*lval.QExpr)

	names := make([]string, syms.Len())
	for i, c := range syms.Cells {
		sym, ok := c.(lval.Symbol)
		if !ok {
			return lval.Errorf("Function '%s' cannot redefine non-symbol. Got %s, Expected %s", name, c.Tag(), "Symbol")
		}
		names[i] = sym.Name()
	}
	if set.New(names...).Length() != len(names) {
		return lval.Errorf("Function '%s' passed repeated symbol names", name)
	}
	if syms.Len() != args.Len()-1 {
		return lval.Errorf("Function '%s' passed wrong number of arguments for symbols. Got %d, Expected %d", name, args.Len()-1, syms.Len())
	}

	for i, n := range names {
		if global {
			env.Def(n, args.Cells[i+1])
		} else {
			env.Put(n, args.Cells[i+1])
		}
	}
	return lval.MakeOK()
}

func Def(env *lval.Env, args *lval.SExpr) lval.Value { return bindVar(env, args, "def", true) }
func Put(env *lval.Env, args *lval.SExpr) lval.Value { return bindVar(env, args, "=", false) }

// Fun sugars (fun {name arg...} {body}) into (= {name} (\ {arg...} {body})):
// the lambda is bound in env itself, not in the root environment.
func Fun(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("fun", args, 2); err != nil {
		return err
	}
	if err := assertType("fun", args, 0, "Q-Expression"); err != nil {
		return err
	}
	if err := assertType("fun", args, 1, "Q-Expression"); err != nil {
		return err
	}
	def := args.Cells[0].(*lval.QExpr)
	body := args.Cells[1].(*lval.QExpr)

	if def.Len() == 0 {
		return lval.Errorf("Function 'fun' requires a function name")
	}
	for _, c := range def.Cells {
		if _, ok := c.(lval.Symbol); !ok {
			return lval.Errorf("Function 'fun' cannot define non-symbol. Got %s, Expected %s", c.Tag(), "Symbol")
		}
	}

	name := def.Cells[0].(lval.Symbol)
	formals := lval.MakeQExprOf(def.Cells[1:]...)
	env.Put(name.Name(), lval.MakeLambda(formals, body, lval.NewChildEnv(nil)))
	return lval.MakeOK()
}

// Lambda builds an anonymous Function value from a formals Q-Expression and
// a body Q-Expression. Like the original, the lambda's environment is
// created fresh and empty here; the call protocol links it to the
// call-site environment only once the lambda is fully applied.
func Lambda(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum(`\`, args, 2); err != nil {
		return err
	}
	if err := assertExpr(`\`, args, 0); err != nil {
		return err
	}
	if err := assertExpr(`\`, args, 1); err != nil {
		return err
	}
	formals, _ := coerceQExpr(args.Cells[0])
	body, _ := coerceQExpr(args.Cells[1])
	for _, c := range formals.Cells {
		if _, ok := c.(lval.Symbol); !ok {
			return lval.Errorf("Cannot define a non-symbol. Got %s, Expected %s.", c.Tag(), "Symbol")
		}
	}
	return lval.MakeLambda(formals, body, lval.NewChildEnv(nil))
}

// Defmacro binds a raw, unevaluated form to a name. Its arguments are never
// evaluated by the caller (the evaluator's macro short-circuit stops the
// walk right after resolving the defmacro symbol itself), so it sees
// exactly the syntax the caller wrote. A bare symbol name binds body
// directly and globally; an (name arg...) signature instead builds and
// locally binds a lambda, mirroring fun.
func Defmacro(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("defmacro", args, 2); err != nil {
		return err
	}
	sig := args.Cells[0]
	body := args.Cells[1]

	if sym, ok := sig.(lval.Symbol); ok {
		env.Def(sym.Name(), body)
		return lval.MakeOK()
	}

	sx, ok := sig.(*lval.SExpr)
	if !ok {
		return lval.Errorf("Function 'defmacro' takes symbol or s-expression. Got %s", sig.Tag())
	}
	if sx.Len() == 0 {
		return lval.Errorf("Function 'defmacro' requires a macro name")
	}
	for _, c := range sx.Cells {
		if _, ok := c.(lval.Symbol); !ok {
			return lval.Errorf("Function 'defmacro' cannot define non-symbol. Got %s, Expected %s", c.Tag(), "Symbol")
		}
	}
	bodyQ, ok := coerceQExpr(body)
	if !ok {
		return lval.Errorf("Function 'defmacro' body must be an expression")
	}

	name := sx.Cells[0].(lval.Symbol)
	formals := lval.MakeQExprOf(sx.Cells[1:]...)
	env.Put(name.Name(), lval.MakeLambda(formals, bodyQ, lval.NewChildEnv(nil)))
	return lval.MakeOK()
}
