// Package lower is the glue layer between a format tree, a set of tensor
// operands, and an ir.Function: it builds the Mode/ModePack chain for
// each operand and drives iteration over it using the hooks the
// capability bits advertise (spec.md §2, the "remaining ~15%" beyond
// format/modetype/ir/codegen). Grounded on bootstrap/cmd's
// driver-struct-with-phase-methods shape (compiler.go's Compiler type).
package lower

import (
	"github.com/keithc-ca/taco/format"
	"github.com/keithc-ca/taco/ir"
	"github.com/keithc-ca/taco/modetype"
	"github.com/keithc-ca/taco/report"
)

// Tensor names one compile-time operand: its name, its declared format,
// the IR variable the emitted function receives for it, and whether that
// variable is pointer-typed.
type Tensor struct {
	Name   string
	Tree   format.TreeLevel
	Var    *ir.Var
	IsPtr  bool
}

// BuildModes walks t's format tree outermost-to-innermost and constructs
// one Mode per level of the chain, including the terminal Values level
// (spec.md §3: chain depth equals the tensor's declared dimensionality
// plus one, for Values), binding each to the ModeType registered for that
// level's code and wiring the conventional array variables (pos/crd/vals)
// as *ir.Var operands so the emitted kernel's signature can expose them.
// All modes making up one tensor's chain share a single ModePack —
// TACO's storage model allows finer-grained packing, but one tensor's
// levels never need to be split across packs for the kernels this
// package lowers.
func BuildModes(t Tensor) []modetype.Mode {
	var codes []byte
	for tl := t.Tree; tl != nil; tl = tl.Children() {
		codes = append(codes, tl.Code())
	}

	n := len(codes)
	if n == 0 {
		report.ICE("tensor %s has an empty format tree", t.Name)
	}

	modes := make([]modetype.Mode, n)
	var parentType *modetype.ModeType
	for level := 0; level < n; level++ {
		mt := modetype.Lookup(codes[level])
		if mt == nil {
			report.ICE("no ModeType registered for format code %q", codes[level])
		}
		modes[level] = modetype.NewMode(t.Var, nil, level, mt, nil, level, parentType)
		bindArrayVars(&modes[level], t.Name)
		parentType = mt
	}

	modetype.NewModePack(modes)
	return modes
}

// bindArrayVars attaches the conventional pos/crd/vals array variables a
// mode kind expects, named to stay unique across a kernel's several
// operands.
func bindArrayVars(m *modetype.Mode, tensorName string) {
	prefix := m.Name()
	switch m.Type {
	case modetype.Sparse:
		m.AddVar("pos", ir.NewVar(prefix+"_pos", ir.Int, true))
		m.AddVar("crd", ir.NewVar(prefix+"_crd", ir.Int, true))
	case modetype.Fixed:
		m.AddVar("fanout", ir.NewVar(prefix+"_fanout", ir.Int, false))
		m.AddVar("crd", ir.NewVar(prefix+"_crd", ir.Int, true))
	case modetype.Values:
		m.AddVar("vals", ir.NewVar(tensorName+"_vals", ir.Double, true))
	}
}
