package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/keithc-ca/taco/report"
)

// execLowerCommand runs the lower -> emit phases for the named kernel and
// writes the result to stdout or to the --out file.
func execLowerCommand(result *olive.ArgParseResult, configPath string) int {
	kernel, ok := result.PrimaryArg()
	if !ok {
		report.Error("lower", "missing kernel name; expected one of: "+usageKernelList())
		return 1
	}

	d := NewDriver(kernel, configPath)
	if d == nil {
		return 1
	}
	if !d.Lower() {
		report.Error("lower", "unknown kernel "+kernel+"; expected one of: "+usageKernelList())
		return 1
	}
	source := d.Emit()

	if outPath, ok := result.Arguments["out"].(string); ok && outPath != "" {
		if err := os.WriteFile(outPath, []byte(source), 0644); err != nil {
			report.Fatal("failed to write emitted source to %q: %s", outPath, err)
		}
		return 0
	}

	os.Stdout.WriteString(source)
	return 0
}
