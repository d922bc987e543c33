package main

import (
	"log/slog"
	"os"

	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/builtins"
	"github.com/lispy-run/lispy/eval"
	"github.com/lispy-run/lispy/reader"
)

// newRootEnv builds a root environment with every builtin bound, then
// loads cfg's stdlib prelude if present.
func newRootEnv(cfg config) *lval.Env {
	root := lval.NewRootEnv()
	builtins.Register(root)

	if path := cfg.stdlibPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			loadFile(root, path)
		}
	}
	return root
}

// loadFile parses path and evaluates every top-level form in turn,
// logging (not aborting on) any form that evaluates to an Error. It is the
// same reduction the load builtin performs, used directly for files named
// on the command line so they don't need to be wrapped in a (load "...")
// call.
func loadFile(env *lval.Env, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Default().Error("could not read file", "path", path, "err", err)
		return
	}
	rd := reader.MakeReader(path, string(data))
	root, err := rd.ReadProgram()
	if err != nil {
		slog.Default().Error("parse error", "path", path, "err", err)
		return
	}
	program, ok := eval.FromSyntax(env, root).(*lval.SExpr)
	if !ok {
		return
	}
	for program.Len() > 0 {
		result := eval.Eval(env, program.Pop(0))
		if e, isErr := result.(*lval.Error); isErr {
			slog.Default().Error(e.Msg(), "source", path)
		}
	}
}
