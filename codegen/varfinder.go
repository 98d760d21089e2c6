// Package codegen emits C source text from an ir.Function, grounded on
// the source's CodeGen_C (FindVars, gen_unique_name, the Function/For/
// While visit methods) but rebuilt on top of ir's strict visitors and the
// Self-pointer permissive-visitor idiom instead of a virtual-method
// IRVisitor subclass.
package codegen

import (
	"fmt"
	"sync/atomic"

	"github.com/keithc-ca/taco/ir"
	"github.com/keithc-ca/taco/report"
)

// uniqueNameCounter is a process-wide counter backing hygienic renaming,
// mirroring CodeGen_C::unique_name_counter but safe for concurrent
// compilations (spec.md §5).
var uniqueNameCounter int64

// genUniqueName produces a hygienic name derived from the original,
// guaranteed distinct across the process: "_<original>_<counter>". The
// leading underscore guards against the original name colliding with a C
// keyword.
func genUniqueName(name string) string {
	n := atomic.AddInt64(&uniqueNameCounter, 1) - 1
	return fmt.Sprintf("_%s_%d", name, n)
}

// varFinder walks a function body and assigns every *ir.Var a name to
// print: inputs and outputs keep their original names (callers address
// them by name), everything else gets a hygienic name the first time it
// is seen. Identity (pointer equality), not the original name, is the map
// key — two distinct *ir.Var nodes that happen to share a Name must not
// collapse into a single declaration.
type varFinder struct {
	ir.BaseVisitor
	varMap map[*ir.Var]string
	order  []*ir.Var
}

func newVarFinder(inputs, outputs []*ir.Var) *varFinder {
	vf := &varFinder{varMap: make(map[*ir.Var]string)}
	vf.BaseVisitor = ir.NewBaseVisitor(vf)

	for _, v := range inputs {
		if _, dup := vf.varMap[v]; dup {
			report.ICE("duplicate input variable %q in codegen", v.Name)
		}
		vf.varMap[v] = v.Name
	}
	for _, v := range outputs {
		if _, dup := vf.varMap[v]; dup {
			report.ICE("duplicate output variable %q in codegen", v.Name)
		}
		vf.varMap[v] = v.Name
	}
	return vf
}

func (vf *varFinder) VisitVar(v *ir.Var) {
	if _, ok := vf.varMap[v]; !ok {
		vf.varMap[v] = genUniqueName(v.Name)
		vf.order = append(vf.order, v)
	}
}

// declarations returns the non-input, non-output variables discovered
// during the walk, in first-seen order. The printed name assigned to each
// is its entry in vf.varMap.
func (vf *varFinder) declarations() []*ir.Var {
	return vf.order
}
