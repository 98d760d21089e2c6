package modetype

import (
	"fmt"

	"github.com/keithc-ca/taco/ir"
	"github.com/keithc-ca/taco/report"
)

// Mode is a per-compilation instantiation of a ModeType at a specific level
// of a specific tensor operand (spec.md §3). The zero value is the
// "undefined" mode — Defined reports false and every accessor other than
// Defined panics through report.ICE, mirroring the source's
// nullptr-Content sentinel for an as-yet-unbound mode.
type Mode struct {
	defined bool

	Tensor ir.Expr
	Size   ir.Expr
	Level  int

	Type       *ModeType
	Pack       *ModePack
	PackLoc    int
	ParentType *ModeType

	vars map[string]ir.Expr
}

// NewMode builds a defined Mode for one level of one tensor operand.
func NewMode(tensor ir.Expr, size ir.Expr, level int, typ *ModeType, pack *ModePack, packLoc int, parentType *ModeType) Mode {
	return Mode{
		defined:    true,
		Tensor:     tensor,
		Size:       size,
		Level:      level,
		Type:       typ,
		Pack:       pack,
		PackLoc:    packLoc,
		ParentType: parentType,
		vars:       make(map[string]ir.Expr),
	}
}

// Defined reports whether this Mode was constructed via NewMode, as
// opposed to being a zero-value placeholder.
func (m *Mode) Defined() bool {
	return m.defined
}

// Name derives this mode's canonical variable-name prefix: the tensor
// variable's name followed by the mode's 1-indexed level, e.g. "A1" for
// level 0 of tensor A (mode_type.cpp's Mode::getName).
func (m *Mode) Name() string {
	if !m.defined {
		report.ICE("Name called on an undefined mode")
	}
	v, ok := m.Tensor.(*ir.Var)
	if !ok {
		report.ICE("mode tensor expression is not a Var")
	}
	return fmt.Sprintf("%s%d", v.Name, m.Level+1)
}

// HasVar reports whether varName has been bound on this mode.
func (m *Mode) HasVar(varName string) bool {
	if !m.defined {
		report.ICE("HasVar called on an undefined mode")
	}
	_, ok := m.vars[varName]
	return ok
}

// GetVar returns the IR variable bound to varName. It is fatal to call
// this for a name that hasn't been bound — callers must check HasVar
// first, matching the source's taco_iassert(hasVar(varName)).
func (m *Mode) GetVar(varName string) ir.Expr {
	if !m.defined {
		report.ICE("GetVar called on an undefined mode")
	}
	v, ok := m.vars[varName]
	if !ok {
		report.ICE("mode %s has no variable bound to %q", m.Name(), varName)
	}
	return v
}

// AddVar binds varName to var on this mode. var must be an *ir.Var, and
// varName must not already be bound: once added, a binding is not
// overwritten within a single lowering (spec.md §4.3).
func (m *Mode) AddVar(varName string, v ir.Expr) {
	if !m.defined {
		report.ICE("AddVar called on an undefined mode")
	}
	if _, ok := v.(*ir.Var); !ok {
		report.ICE("AddVar requires an *ir.Var, got %T", v)
	}
	if _, ok := m.vars[varName]; ok {
		report.ICE("mode %s already has a variable bound to %q", m.Name(), varName)
	}
	m.vars[varName] = v
}
