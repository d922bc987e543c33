// Command lispy is the REPL and file-loader front end for the interpreter.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

func runLispy(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg.debug)

	env := newRootEnv(cfg)

	if len(args) == 0 {
		return runRepl(env, cfg)
	}
	for _, path := range args {
		loadFile(env, path)
	}
	return nil
}
