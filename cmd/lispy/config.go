package main

import (
	"os"
	"path/filepath"
)

// config holds the resolved runtime configuration (§6.2), layering CLI
// flags over environment variables over built-in defaults.
type config struct {
	home     string
	debug    bool
	histFile string
}

func loadConfig() config {
	home := *rootFlags.home
	if home == "" {
		home = os.Getenv("LISPY_HOME")
	}
	if home == "" {
		if dir, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(dir, ".lispy")
		}
	}

	debug := *rootFlags.debug
	if !debug {
		debug = os.Getenv("LISPY_DEBUG") == "1"
	}

	hist := os.Getenv("LISPY_HISTFILE")
	if hist == "" && home != "" {
		hist = filepath.Join(home, ".lispy_history")
	}

	return config{home: home, debug: debug, histFile: hist}
}

// stdlibPath is the prelude lispy looks for under home on startup. Its
// absence is not an error; stdlib.lsp is optional.
func (c config) stdlibPath() string {
	if c.home == "" {
		return ""
	}
	return filepath.Join(c.home, "stdlib.lsp")
}
