package cmd

import (
	"github.com/ComedicChimera/olive"
	"github.com/keithc-ca/taco/report"
)

// execRunCommand runs the full lower -> emit -> compile -> load pipeline
// for the named kernel as a smoke test: a successful run means the
// emitted C compiled cleanly and the external compiler's output exposed
// the kernel's symbol. It does not invoke the loaded symbol — a JIT
// wrapper only promises a resolvable function pointer (spec.md §4.6), not
// a calling convention this CLI can safely bridge back into Go.
func execRunCommand(result *olive.ArgParseResult, configPath string) int {
	kernel, ok := result.PrimaryArg()
	if !ok {
		report.Error("run", "missing kernel name; expected one of: "+usageKernelList())
		return 1
	}

	d := NewDriver(kernel, configPath)
	if d == nil {
		return 1
	}
	if !d.Lower() {
		report.Error("run", "unknown kernel "+kernel+"; expected one of: "+usageKernelList())
		return 1
	}
	d.Emit()

	mod := d.CompileAndLoad()
	if mod == nil {
		report.Finished(false, "")
		return 1
	}
	report.Finished(true, mod.Path())
	return 0
}
