package lower

import (
	"github.com/keithc-ca/taco/ir"
	"github.com/keithc-ca/taco/modetype"
	"github.com/keithc-ca/taco/report"
)

// DenseCopy lowers y(i) = x(i) where both x and y are stored densely
// (spec.md §8 scenario 1): a single for loop over [0, n) with a direct
// load/store, no mode machinery needed since a Dense mode's coordinate
// iteration is already just that range.
func DenseCopy(n *ir.Var) *ir.Function {
	x := ir.NewVar("x", ir.Double, true)
	y := ir.NewVar("y", ir.Double, true)
	i := ir.NewVar("i", ir.Int, false)

	body := ir.NewBlock(ir.NewStore(y, i, ir.NewLoad(x, i, ir.Double)))
	loop := ir.NewFor(i, ir.NewIntLit(0), n, body)

	return ir.NewFunction("dense_copy", []*ir.Var{x, n}, []*ir.Var{y}, ir.NewBlock(loop))
}

// SparseToDenseCopy lowers y(i) = x(i) where x is sparse (compressed) and
// y is dense (spec.md §8 scenario 2): an outer loop over x's single
// compressed level from pos[0] to pos[1], with coord read off the crd
// array at each position, storing directly into y at that coordinate.
func SparseToDenseCopy() *ir.Function {
	y := ir.NewVar("y", ir.Double, true)

	xTensor := ir.NewVar("x", ir.Int, true) // opaque tensor handle, not dereferenced directly
	xMode := modetype.NewMode(xTensor, nil, 0, modetype.Sparse, nil, 0, nil)
	pos := ir.NewVar("x1_pos", ir.Int, true)
	crd := ir.NewVar("x1_crd", ir.Int, true)
	vals := ir.NewVar("x_vals", ir.Double, true)
	xMode.AddVar("pos", pos)
	xMode.AddVar("crd", crd)

	p := ir.NewVar("p", ir.Int, false)

	iter := xMode.Type.GetPosIter(ir.NewIntLit(0), &xMode)
	if iter.Empty() {
		report.ICE("sparse mode did not produce a position iteration fragment")
	}

	access := xMode.Type.GetPosAccess(p, nil, &xMode)
	if access.Empty() {
		report.ICE("sparse mode did not produce a position access fragment")
	}

	body := ir.NewBlock(
		ir.NewStore(y, access.Coord, ir.NewLoad(vals, p, ir.Double)),
	)
	loop := ir.NewFor(p, iter.Begin, iter.End, body)

	inputs := []*ir.Var{pos, crd, vals}
	outputs := []*ir.Var{y}
	return ir.NewFunction("sparse_to_dense_copy", inputs, outputs, ir.NewBlock(loop))
}

// CSRSpMV lowers y(i) = A(i,j) * x(j) for A stored in CSR (format "ds":
// dense rows, compressed columns) (spec.md §8 scenario 3): an outer dense
// loop over rows i, an inner compressed loop over p from pos[i] to
// pos[i+1], accumulating vals[p]*x[idx[p]] into y[i].
func CSRSpMV(n *ir.Var) *ir.Function {
	y := ir.NewVar("y", ir.Double, true)
	x := ir.NewVar("x", ir.Double, true)

	aTensor := ir.NewVar("A", ir.Int, true)
	rowMode := modetype.NewMode(aTensor, n, 0, modetype.Dense, nil, 0, nil)

	colMode := modetype.NewMode(aTensor, nil, 1, modetype.Sparse, nil, 1, modetype.Dense)
	pos := ir.NewVar("A2_pos", ir.Int, true)
	crd := ir.NewVar("A2_crd", ir.Int, true)
	vals := ir.NewVar("A_vals", ir.Double, true)
	colMode.AddVar("pos", pos)
	colMode.AddVar("crd", crd)

	i := ir.NewVar("i", ir.Int, false)
	p := ir.NewVar("p", ir.Int, false)

	rowIter := rowMode.Type.GetCoordIter(nil, &rowMode)
	if rowIter.Empty() {
		report.ICE("dense mode did not produce a coordinate iteration fragment")
	}

	colIter := colMode.Type.GetPosIter(i, &colMode)
	if colIter.Empty() {
		report.ICE("sparse mode did not produce a position iteration fragment")
	}

	colAccess := colMode.Type.GetPosAccess(p, nil, &colMode)
	if colAccess.Empty() {
		report.ICE("sparse mode did not produce a position access fragment")
	}

	term := ir.NewBinary(ir.Mul, ir.NewLoad(vals, p, ir.Double), ir.NewLoad(x, colAccess.Coord, ir.Double), ir.Double)

	innerBody := ir.NewBlock(
		ir.NewStore(y, i, ir.NewBinary(ir.Add, ir.NewLoad(y, i, ir.Double), term, ir.Double)),
	)
	innerLoop := ir.NewFor(p, colIter.Begin, colIter.End, innerBody)

	initRow := ir.NewStore(y, i, ir.NewFloatLit(0, ir.Double))
	outerBody := ir.NewBlock(initRow, innerLoop)
	outerLoop := ir.NewFor(i, rowIter.Begin, rowIter.End, outerBody)

	inputs := []*ir.Var{n, pos, crd, vals, x}
	outputs := []*ir.Var{y}
	return ir.NewFunction("csr_spmv", inputs, outputs, ir.NewBlock(outerLoop))
}
