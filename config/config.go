// Package config loads the TOML-backed compile-target manifest that
// parameterizes the lower -> codegen -> jit pipeline: which external
// compiler to invoke, what flags to pass it, and the default vector
// width for Vectorized loops (spec.md §4.6, SPEC_FULL.md §7). Grounded
// on depm/load_mod.go's load-then-validate shape, repurposed from a
// package manifest to a compile-target one.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/keithc-ca/taco/report"
)

// FileName is the conventional manifest file name a project directory is
// expected to carry.
const FileName = "taco.toml"

// tomlTarget is the on-disk TOML shape of a compile target.
type tomlTarget struct {
	CompilerPath     string   `toml:"compiler-path"`
	CompilerFlags    []string `toml:"compiler-flags"`
	DefaultVecWidth  int      `toml:"default-vector-width"`
}

// Target is a validated compile-target manifest.
type Target struct {
	CompilerPath    string
	CompilerFlags   []string
	DefaultVecWidth int
}

// defaultTarget is used whenever no manifest file is present: a plain cc
// invocation with vectorization left to the target compiler's own
// defaults.
func defaultTarget() *Target {
	return &Target{CompilerPath: "cc", DefaultVecWidth: 0}
}

// Load reads and validates the manifest at path. If path does not exist,
// Load returns the default target rather than failing, since a compile
// target file is convenience configuration, not a required project
// artifact.
func Load(path string) (*Target, bool) {
	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultTarget(), true
	}
	if err != nil {
		report.Fatal("%s", errors.Wrapf(err, "unable to read compile-target manifest at %q", path))
		return nil, false
	}

	tomlTgt := &tomlTarget{}
	if err := toml.Unmarshal(buf, tomlTgt); err != nil {
		report.Fatal("%s", errors.Wrapf(err, "error parsing compile-target manifest at %q", path))
		return nil, false
	}

	target := &Target{
		CompilerPath:    tomlTgt.CompilerPath,
		CompilerFlags:   tomlTgt.CompilerFlags,
		DefaultVecWidth: tomlTgt.DefaultVecWidth,
	}
	if !validate(target, path) {
		return nil, false
	}

	return target, true
}

// validate fills in defaults for unset fields and replaces a negative
// vector width, which can't correspond to any real SIMD lane count, with 0
// after a warning. It always reports success.
func validate(t *Target, path string) bool {
	if t.CompilerPath == "" {
		t.CompilerPath = "cc"
	}
	if t.DefaultVecWidth < 0 {
		report.Warn("config", fmt.Sprintf("%s: default-vector-width must not be negative, ignoring", path))
		t.DefaultVecWidth = 0
	}
	return true
}
