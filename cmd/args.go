// Package cmd is the top-level driver package for the taco CLI: argument
// parsing, compiler state, and the phase sequence (lower -> emit -> jit)
// that turns a kernel name and a compile-target manifest into either
// printed C source or a loaded, symbol-resolved shared object.
//
// Grounded on the teacher's bootstrap/cmd/execute.go: the same
// github.com/ComedicChimera/olive CLI builder (NewCLI, AddSubcommand,
// AddSelectorArg, AddPrimaryArg, ParseArgs), repurposed from chai's
// build/mod/version subcommands to taco's lower/run/version ones.
package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/keithc-ca/taco/report"
)

const version = "0.1.0"

// logLevelOf maps the --loglevel selector's string value to report's
// numeric level, defaulting to verbose if the flag is somehow absent.
func logLevelOf(result *olive.ArgParseResult) int {
	lvl, ok := result.Arguments["loglevel"].(string)
	if !ok {
		return report.LogLevelVerbose
	}
	switch lvl {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}

// configPathOf returns the --config value, or the conventional default
// manifest name if the flag wasn't supplied.
func configPathOf(result *olive.ArgParseResult) string {
	if p, ok := result.Arguments["config"].(string); ok && p != "" {
		return p
	}
	return "taco.toml"
}

func printVersion() {
	os.Stdout.WriteString("taco " + version + "\n")
}
