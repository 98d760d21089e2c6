package modetype

import "github.com/keithc-ca/taco/ir"

// fanoutVar and crdFixedArrayVar name the variable slots a fixed mode
// binds: "fanout" holds the constant per-parent child count, "crd" holds
// the coordinate array.
const (
	fanoutVar      = "fanout"
	crdFixedArrayVar = crdArrayVar
)

// Fixed is a mode with a constant number of children per parent position:
// ordered, unique, branchless (every parent has the same fanout), and
// compact, but not full (a parent's children needn't cover every
// coordinate). Position iteration is a fixed stride off the parent
// position (spec.md §4.2).
var Fixed = &ModeType{
	Name: "fixed",

	Ordered:    true,
	Unique:     true,
	Branchless: true,
	Compact:    true,

	HasCoordPosIter: true,
	HasAppend:       true,

	Hooks: Hooks{
		GetPosIter: func(parentPos ir.Expr, m *Mode) IterFragment {
			fanout := m.GetVar(fanoutVar)
			begin := ir.NewBinary(ir.Mul, parentPos, fanout, ir.Int)
			end := ir.NewBinary(ir.Add, begin, fanout, ir.Int)
			return IterFragment{Begin: begin, End: end}
		},
		GetPosAccess: func(pos ir.Expr, i []ir.Expr, m *Mode) AccessFragment {
			crd := m.GetVar(crdFixedArrayVar)
			return AccessFragment{
				Coord: ir.NewLoad(crd, pos, ir.Int),
				Valid: ir.NewIntLit(1),
			}
		},
		GetAppendCoord: func(p, i ir.Expr, m *Mode) ir.Stmt {
			crd := m.GetVar(crdFixedArrayVar)
			return ir.NewStore(crd, p, i)
		},
		GetSize: func(m *Mode) ir.Expr {
			return m.Size
		},
	},
}
