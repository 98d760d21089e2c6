// Package jit is the external-collaborator boundary for turning emitted C
// source into a callable function pointer: write source to a temp file,
// shell out to an external C compiler to produce a shared object, then
// load and resolve a symbol from it. Grounded on the source's
// Module::compile/get_func (temp file, "cc -shared", dlopen/dlsym) and on
// bootstrap/cmd's compileLLVMModule (os/exec, stderr capture, fatal on
// nonzero exit) — Go's stdlib plugin package stands in for dlopen/dlsym
// since there is no dlopen wrapper anywhere in the retrieved pack and cgo
// is off the table (spec.md §4.6).
package jit

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"plugin"

	"github.com/pkg/errors"
	"github.com/keithc-ca/taco/report"
)

// Options configures how a Module compiles emitted source into a shared
// object. CompilerPath and ExtraFlags are normally sourced from the
// loaded compile-target manifest (package config).
type Options struct {
	CompilerPath string
	ExtraFlags   []string
	WorkDir      string
}

// Module is a compiled-and-loaded shared object holding one or more
// emitted kernels, corresponding to the source's Module class.
type Module struct {
	path   string
	plugin *plugin.Plugin
}

// Compile writes source to a randomly named temp file under opts.WorkDir
// (or the system temp dir if unset), invokes the configured external
// compiler to produce a Go plugin (a position-independent shared object
// the plugin package can open), and returns the resulting Module. It is
// fatal if the compiler can't be found, fails, or exits nonzero — these
// are expected external-tool failures, not internal compiler bugs, so
// they route through report.Fatal rather than report.ICE.
func Compile(source string, opts Options) *Module {
	dir := opts.WorkDir
	if dir == "" {
		dir = os.TempDir()
	}

	srcFile, err := os.CreateTemp(dir, "taco_kernel_*.c")
	if err != nil {
		report.Fatal("%s", errors.Wrap(err, "failed to create temp source file"))
	}
	srcPath := srcFile.Name()
	defer os.Remove(srcPath)

	if _, err := srcFile.WriteString(source); err != nil {
		srcFile.Close()
		report.Fatal("%s", errors.Wrapf(err, "failed to write emitted source to %q", srcPath))
	}
	if err := srcFile.Close(); err != nil {
		report.Fatal("%s", errors.Wrapf(err, "failed to close temp source file %q", srcPath))
	}

	soPath := srcPath[:len(srcPath)-len(filepath.Ext(srcPath))] + ".so"

	compiler := opts.CompilerPath
	if compiler == "" {
		compiler = "cc"
	}
	args := append([]string{"-shared", "-fPIC", "-o", soPath, srcPath}, opts.ExtraFlags...)

	cmd := exec.Command(compiler, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		report.Fatal("%s", errors.Wrapf(err, "failed to compile emitted kernel with %q:\n%s", compiler, stderr.String()))
	}

	p, err := plugin.Open(soPath)
	if err != nil {
		report.Fatal("%s", errors.Wrapf(err, "failed to load compiled kernel %q", soPath))
	}

	return &Module{path: soPath, plugin: p}
}

// GetFunc resolves name to a callable symbol within the module. It is
// fatal if the symbol doesn't exist — the emitted source and the lookup
// are generated from the same ir.Function, so a missing symbol indicates
// a bug in the emitter, not a recoverable user error.
func (m *Module) GetFunc(name string) plugin.Symbol {
	sym, err := m.plugin.Lookup(name)
	if err != nil {
		report.Fatal("%s", errors.Wrapf(err, "compiled kernel is missing expected symbol %q", name))
	}
	return sym
}

// Path returns the filesystem path of the compiled shared object, mainly
// useful for diagnostics.
func (m *Module) Path() string {
	return m.path
}

// String implements fmt.Stringer for diagnostic messages.
func (m *Module) String() string {
	return fmt.Sprintf("jit.Module(%s)", m.path)
}
