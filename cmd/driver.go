package cmd

import (
	"strings"

	"github.com/keithc-ca/taco/codegen"
	"github.com/keithc-ca/taco/config"
	"github.com/keithc-ca/taco/ir"
	"github.com/keithc-ca/taco/jit"
	"github.com/keithc-ca/taco/report"
)

// Driver wraps the per-invocation state shared across the lower -> emit ->
// jit phase sequence, one method per phase, grounded on the teacher's
// Compiler type in bootstrap/cmd/compiler.go.
type Driver struct {
	Target *config.Target

	kernelName string
	fn         *ir.Function
	source     string
}

// NewDriver constructs a Driver for one kernel, loading target from
// configPath (falling back to defaults if the manifest is absent).
func NewDriver(kernelName, configPath string) *Driver {
	target, ok := config.Load(configPath)
	if !ok {
		return nil
	}
	return &Driver{Target: target, kernelName: kernelName}
}

// Lower resolves the driver's kernel name to a lowered ir.Function. It
// reports false (without invoking report.Fatal) for an unrecognized name
// so the caller can print a clean usage error instead of an ICE.
func (d *Driver) Lower() bool {
	report.BeginPhase("lower")
	fn, ok := buildKernel(d.kernelName)
	if !ok {
		report.EndPhase(false)
		return false
	}
	d.fn = fn
	report.EndPhase(true)
	return true
}

// Emit runs the lowered function through the emitter, caching the result.
func (d *Driver) Emit() string {
	report.BeginPhase("emit")
	d.source = codegen.Emit(d.fn)
	report.EndPhase(true)
	return d.source
}

// CompileAndLoad shells out to the configured external compiler and loads
// the result, resolving d.fn's name as a symbol. It returns the loaded
// module, or nil if nothing has been emitted yet.
func (d *Driver) CompileAndLoad() *jit.Module {
	if d.source == "" {
		return nil
	}
	report.BeginPhase("compile")
	mod := jit.Compile(d.source, jit.Options{
		CompilerPath: d.Target.CompilerPath,
		ExtraFlags:   d.Target.CompilerFlags,
	})
	report.EndPhase(true)

	report.BeginPhase("load")
	mod.GetFunc(d.fn.Name)
	report.EndPhase(true)
	return mod
}

// usageKernelList renders the known kernel names for an error message.
func usageKernelList() string {
	return strings.Join(knownKernels(), ", ")
}
