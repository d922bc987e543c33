package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"

	"github.com/chzyer/readline"

	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/eval"
	"github.com/lispy-run/lispy/reader"
)

// runRepl drives the interactive prompt until EOF (Ctrl-D) or an
// interrupt. A panic inside one iteration is recovered and logged, and the
// loop restarts rather than taking the whole process down with it.
func runRepl(env *lval.Env, cfg config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lisp> ",
		HistoryFile:     cfg.histFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go replLoop(rl, env, &wg)
	wg.Wait()
	return nil
}

func replLoop(rl *readline.Instance, env *lval.Env, wg *sync.WaitGroup) {
	defer func() {
		if r := recover(); r != nil {
			slog.Default().Error("recovered from panic", "value", r, "stack", string(debug.Stack()))
			go replLoop(rl, env, wg)
			return
		}
		wg.Done()
	}()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		if line == "" {
			continue
		}

		rd := reader.MakeReader("<repl>", line)
		for {
			tree, err := rd.ReadOne()
			if err != nil {
				slog.Default().Error(err.Error())
				break
			}
			if tree == nil {
				break
			}

			form := eval.FromSyntax(env, tree)
			result := eval.Eval(env, form)
			lval.Print(os.Stdout, result)
			fmt.Println()
		}
	}
}
