package modetype

import "github.com/keithc-ca/taco/ir"

// posArrayVar and crdArrayVar are the conventional variable-slot names a
// sparse (CSR-style compressed) mode binds via Mode.AddVar: "pos" holds
// the per-parent-position offset array, "crd" holds the coordinate array.
const (
	posArrayVar = "pos"
	crdArrayVar = "crd"
)

// Sparse is a compressed mode: ordered, unique, compact, but not full and
// not branchless, since the number of children of a parent position
// varies. Position iteration walks [pos[p], pos[p+1]) and locate is a
// binary search over the coordinate array restricted to that range
// (spec.md §4.2).
var Sparse = &ModeType{
	Name: "sparse",

	Ordered: true,
	Unique:  true,
	Compact: true,

	HasCoordPosIter: true,
	HasLocate:       true,
	HasAppend:       true,

	Hooks: Hooks{
		GetPosIter: func(parentPos ir.Expr, m *Mode) IterFragment {
			pos := m.GetVar(posArrayVar)
			begin := ir.NewLoad(pos, parentPos, ir.Int)
			next := ir.NewBinary(ir.Add, parentPos, ir.NewIntLit(1), ir.Int)
			end := ir.NewLoad(pos, next, ir.Int)
			return IterFragment{Begin: begin, End: end}
		},
		GetPosAccess: func(pos ir.Expr, i []ir.Expr, m *Mode) AccessFragment {
			crd := m.GetVar(crdArrayVar)
			return AccessFragment{
				Coord: ir.NewLoad(crd, pos, ir.Int),
				Valid: ir.NewIntLit(1),
			}
		},
		GetLocate: binarySearchLocate,
		GetAppendCoord: func(p, i ir.Expr, m *Mode) ir.Stmt {
			crd := m.GetVar(crdArrayVar)
			return ir.NewStore(crd, p, i)
		},
		GetAppendEdges: func(pPrev, pBegin, pEnd ir.Expr, m *Mode) ir.Stmt {
			pos := m.GetVar(posArrayVar)
			next := ir.NewBinary(ir.Add, pPrev, ir.NewIntLit(1), ir.Int)
			return ir.NewStore(pos, next, pEnd)
		},
		GetAppendInitEdges: func(pPrevBegin, pPrevEnd ir.Expr, m *Mode) ir.Stmt {
			pos := m.GetVar(posArrayVar)
			return ir.NewStore(pos, ir.NewIntLit(0), ir.NewIntLit(0))
		},
	},
}

// binarySearchLocate builds a binary-search loop over the coordinate
// array restricted to [pos[parentPos], pos[parentPos+1]), producing a
// (guard, pos, found) fragment: guard runs the search and leaves Found
// and Pos bound to fresh variables, mirroring the source's compressed
// mode's getLocate.
func binarySearchLocate(parentPos ir.Expr, i []ir.Expr, m *Mode) LocateFragment {
	pos := m.GetVar(posArrayVar)
	crd := m.GetVar(crdArrayVar)
	target := i[len(i)-1]

	lo := ir.NewVar(m.Name()+"_lo", ir.Int, false)
	hi := ir.NewVar(m.Name()+"_hi", ir.Int, false)
	found := ir.NewVar(m.Name()+"_found", ir.Int, false)
	resultPos := ir.NewVar(m.Name()+"_pos", ir.Int, false)

	next := ir.NewBinary(ir.Add, parentPos, ir.NewIntLit(1), ir.Int)

	init := ir.NewBlock(
		ir.NewAssign(lo, ir.NewLoad(pos, parentPos, ir.Int)),
		ir.NewAssign(hi, ir.NewLoad(pos, next, ir.Int)),
		ir.NewAssign(found, ir.NewIntLit(0)),
		ir.NewAssign(resultPos, ir.NewIntLit(0)),
	)

	mid := ir.NewVar(m.Name()+"_mid", ir.Int, false)
	midSum := ir.NewBinary(ir.Add, lo, hi, ir.Int)
	midVal := ir.NewBinary(ir.Div, midSum, ir.NewIntLit(2), ir.Int)
	midCrd := ir.NewLoad(crd, mid, ir.Int)

	loopBody := ir.NewBlock(
		ir.NewAssign(mid, midVal),
		&ir.If{
			Cond: ir.NewBinary(ir.Eq, midCrd, target, ir.Int),
			Then: ir.NewBlock(
				ir.NewAssign(found, ir.NewIntLit(1)),
				ir.NewAssign(resultPos, mid),
				ir.NewAssign(lo, hi),
			),
			Else: &ir.If{
				Cond: ir.NewBinary(ir.Lt, midCrd, target, ir.Int),
				Then: ir.NewAssign(lo, ir.NewBinary(ir.Add, mid, ir.NewIntLit(1), ir.Int)),
				Else: ir.NewAssign(hi, mid),
			},
		},
	)

	loop := ir.NewWhile(ir.NewBinary(ir.Lt, lo, hi, ir.Int), loopBody)

	guard := ir.NewBlock(init, loop)

	return LocateFragment{
		Guard: guard,
		Pos:   resultPos,
		Found: found,
	}
}
