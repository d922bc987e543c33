package main

import (
	"log/slog"
	"os"
)

// setupLogging installs the process-wide slog default used by the REPL for
// reader errors and by the load builtin and loadFile for per-form Error
// results. An Error value produced by a form typed at the REPL is printed
// to stdout like any other result, not logged.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
