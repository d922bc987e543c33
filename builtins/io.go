package builtins

import (
	"log/slog"
	"os"

	"github.com/chzyer/readline"

	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/eval"
	"github.com/lispy-run/lispy/reader"
)

// Load reads a file, parses it, and evaluates each top-level form in turn,
// exactly as if each had been typed at the REPL one at a time. Any form
// that evaluates to an Error is logged, not returned; a successful load
// itself always yields OK, so failures inside a loaded file don't abort
// whatever loaded it.
func Load(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("load", args, 1); err != nil {
		return err
	}
	if err := assertType("load", args, 0, "String"); err != nil {
		return err
	}
	path := args.Cells[0].(lval.String).GetValue()

	data, ioErr := os.ReadFile(path)
	if ioErr != nil {
		return lval.Errorf("Could not load Library %s", ioErr)
	}

	rd := reader.MakeReader(path, string(data))
	root, parseErr := rd.ReadProgram()
	if parseErr != nil {
		return lval.Errorf("Could not load Library %s", parseErr)
	}

	program, ok := eval.FromSyntax(env, root).(*lval.SExpr)
	if !ok {
		return lval.Errorf("Could not load Library %s", path)
	}
	for program.Len() > 0 {
		result := eval.Eval(env, program.Pop(0))
		if e, isErr := result.(*lval.Error); isErr {
			slog.Default().Error(e.Msg(), "source", path)
		}
	}
	return lval.MakeOK()
}

// Parse runs a string through the reader and tree ingestion, returning
// whatever value results (typically an S-Expression) without evaluating it.
func Parse(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("parse", args, 1); err != nil {
		return err
	}
	if err := assertType("parse", args, 0, "String"); err != nil {
		return err
	}
	src := args.Cells[0].(lval.String).GetValue()

	rd := reader.MakeReader("<parse>", src)
	root, err := rd.ReadProgram()
	if err != nil {
		return lval.Errorf("Unable to parse %s", src)
	}
	return eval.FromSyntax(env, root)
}

// Read prompts on the terminal using the given symbol's name, binds the
// line typed back to that symbol in env, and returns it as a String.
func Read(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("read", args, 1); err != nil {
		return err
	}
	if err := assertType("read", args, 0, "Symbol"); err != nil {
		return err
	}
	sym := args.Cells[0].(lval.Symbol)

	rl, err := readline.New(sym.Name() + " > ")
	if err != nil {
		return lval.Errorf("Unable to read input for %s", sym.Name())
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil || line == "" {
		return lval.Errorf("Unable to read input for %s", sym.Name())
	}
	v := lval.MakeString(line)
	env.Put(sym.Name(), v)
	return v
}

// ErrorBuiltin turns a String argument into an Error value; it is the
// language-level way to raise a failure from within a lambda.
func ErrorBuiltin(env *lval.Env, args *lval.SExpr) lval.Value {
	if err := assertNum("error", args, 1); err != nil {
		return err
	}
	if err := assertType("error", args, 0, "String"); err != nil {
		return err
	}
	return lval.MakeError(args.Cells[0].(lval.String).GetValue())
}
