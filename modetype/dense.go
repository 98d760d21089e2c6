package modetype

import "github.com/keithc-ca/taco/ir"

// Dense is a fully occupied mode: full, ordered, unique, branchless, and
// compact. Coordinate iteration is a plain range loop over [0, size), and
// locate computes the position directly as parentPos*size + coordinate —
// no search is needed because every coordinate in [0, size) is present
// (spec.md §4.2).
var Dense = &ModeType{
	Name: "dense",

	Full:       true,
	Ordered:    true,
	Unique:     true,
	Branchless: true,
	Compact:    true,

	HasCoordValIter: true,
	HasLocate:       true,

	Hooks: Hooks{
		GetCoordIter: func(i []ir.Expr, m *Mode) IterFragment {
			return IterFragment{
				Begin: ir.NewIntLit(0),
				End:   m.Size,
			}
		},
		GetCoordAccess: func(parentPos ir.Expr, i []ir.Expr, m *Mode) AccessFragment {
			return AccessFragment{
				Coord: i[len(i)-1],
				Valid: ir.NewIntLit(1),
			}
		},
		GetLocate: func(parentPos ir.Expr, i []ir.Expr, m *Mode) LocateFragment {
			pos := ir.NewBinary(ir.Mul, parentPos, m.Size, ir.Int)
			pos = ir.NewBinary(ir.Add, pos, i[len(i)-1], ir.Int)
			return LocateFragment{
				Pos:   pos,
				Found: ir.NewIntLit(1),
			}
		},
		GetInsertInitLevel: func(szPrev, sz ir.Expr, m *Mode) ir.Stmt {
			return nil
		},
		GetSize: func(m *Mode) ir.Expr {
			return m.Size
		},
	},
}
