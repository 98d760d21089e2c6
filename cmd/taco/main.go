// Command taco is the CLI front end for the tensor-algebra lowering
// engine: it lowers a canonical kernel to specialized C (the "lower"
// subcommand) or lowers, compiles, and loads it as a smoke test (the
// "run" subcommand).
package main

import (
	"os"

	"github.com/keithc-ca/taco/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
