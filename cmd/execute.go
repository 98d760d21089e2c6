package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/keithc-ca/taco/report"
)

// Execute is the main entry point for the taco CLI. It should be called
// directly from main; the exit code distinguishes a clean error (bad
// arguments, unknown kernel) from success.
//
// The CLI surface is built on github.com/ComedicChimera/olive, the same
// library the teacher's bootstrap/cmd/execute.go uses for the chai
// compiler's build/mod/version subcommands — here repurposed to taco's
// lower/run/version ones.
func Execute() int {
	defer report.CatchICE()

	cli := olive.NewCLI("taco", "taco lowers tensor-algebra kernels to specialized C", true)

	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the diagnostic log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	cli.AddStringArg("config", "c", "path to a compile-target manifest (defaults to ./taco.toml)", false)

	lowerCmd := cli.AddSubcommand("lower", "emit C source for a kernel", true)
	lowerCmd.AddPrimaryArg("kernel", "the kernel to lower: dense_copy, sparse_to_dense_copy, or csr_spmv", true)
	lowerCmd.AddStringArg("out", "o", "write emitted source to this file instead of stdout", false)

	runCmd := cli.AddSubcommand("run", "lower, compile, and load a kernel as a smoke test", true)
	runCmd.AddPrimaryArg("kernel", "the kernel to lower, compile, and load", true)

	cli.AddSubcommand("version", "print the taco version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.Error("cli", err.Error())
		return 1
	}

	report.InitReporter(logLevelOf(result))

	subcmdName, subResult, ok := result.Subcommand()
	if !ok {
		report.Error("cli", "expected a subcommand: lower, run, or version")
		return 1
	}

	switch subcmdName {
	case "lower":
		return execLowerCommand(subResult, configPathOf(result))
	case "run":
		return execRunCommand(subResult, configPathOf(result))
	case "version":
		printVersion()
		return 0
	default:
		report.Error("cli", "unrecognized subcommand "+subcmdName)
		return 1
	}
}
