package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags = struct {
	home  *string
	debug *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lispy [file...]",
	Short: "A small Lisp-family interpreter",
	Long: `lispy reads and evaluates Lisp-family source.

With no arguments it starts an interactive prompt. Given one or more file
arguments, it loads each in turn and exits.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runLispy,
}

func init() {
	rootFlags.home = rootCmd.Flags().String("home", "", "interpreter home directory (default $LISPY_HOME)")
	rootFlags.debug = rootCmd.Flags().Bool("debug", false, "enable verbose evaluator logging (default $LISPY_DEBUG)")
}

// Execute runs the root command and reports a failure to the caller.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
