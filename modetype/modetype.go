package modetype

import "github.com/keithc-ca/taco/ir"

// ModeType describes a storage kind by name, five structural properties,
// and five capability bits, plus the Hooks table implementing whichever
// capabilities it declares (spec.md §3).
//
// The contract is: a capability bit states whether the matching hook is
// implemented. If false, the hook is expected to be nil and the wrapper
// methods below return the empty fragment; if true, calling the wrapper
// must yield a non-empty fragment on well-formed input. Lowering code must
// consult the capability bit before calling a hook wrapper — calling one
// that isn't supported is a capability mismatch and is fatal (spec.md §7).
type ModeType struct {
	Name string

	Full       bool
	Ordered    bool
	Unique     bool
	Branchless bool
	Compact    bool

	HasCoordValIter bool
	HasCoordPosIter bool
	HasLocate       bool
	HasInsert       bool
	HasAppend       bool

	Hooks Hooks
}

// GetCoordIter produces the (init, begin, end) fragment for coordinate
// iteration over mode m, or the empty fragment if unsupported.
func (mt *ModeType) GetCoordIter(i []ir.Expr, m *Mode) IterFragment {
	if mt.Hooks.GetCoordIter == nil {
		return IterFragment{}
	}
	return mt.Hooks.GetCoordIter(i, m)
}

// GetCoordAccess produces the (guard, coord, valid) fragment for a
// coordinate access at a given parent position.
func (mt *ModeType) GetCoordAccess(parentPos ir.Expr, i []ir.Expr, m *Mode) AccessFragment {
	if mt.Hooks.GetCoordAccess == nil {
		return AccessFragment{}
	}
	return mt.Hooks.GetCoordAccess(parentPos, i, m)
}

// GetPosIter produces the (init, begin, end) fragment for position
// iteration below a given parent position.
func (mt *ModeType) GetPosIter(parentPos ir.Expr, m *Mode) IterFragment {
	if mt.Hooks.GetPosIter == nil {
		return IterFragment{}
	}
	return mt.Hooks.GetPosIter(parentPos, m)
}

// GetPosAccess produces the (guard, coord, valid) fragment for a direct
// position access.
func (mt *ModeType) GetPosAccess(pos ir.Expr, i []ir.Expr, m *Mode) AccessFragment {
	if mt.Hooks.GetPosAccess == nil {
		return AccessFragment{}
	}
	return mt.Hooks.GetPosAccess(pos, i, m)
}

// GetLocate produces the (guard, pos, found) fragment for a targeted
// coordinate lookup below a given parent position.
func (mt *ModeType) GetLocate(parentPos ir.Expr, i []ir.Expr, m *Mode) LocateFragment {
	if mt.Hooks.GetLocate == nil {
		return LocateFragment{}
	}
	return mt.Hooks.GetLocate(parentPos, i, m)
}

// GetInsertCoord produces the statement that inserts a coordinate at
// position p during random-order insertion.
func (mt *ModeType) GetInsertCoord(p ir.Expr, i []ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetInsertCoord == nil {
		return nil
	}
	return mt.Hooks.GetInsertCoord(p, i, m)
}

// GetInsertInitCoords produces level-local setup run once before a run of
// insertions over [pBegin, pEnd).
func (mt *ModeType) GetInsertInitCoords(pBegin, pEnd ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetInsertInitCoords == nil {
		return nil
	}
	return mt.Hooks.GetInsertInitCoords(pBegin, pEnd, m)
}

// GetInsertInitLevel produces the statement that allocates this level's
// storage given the previous level's size and this level's size.
func (mt *ModeType) GetInsertInitLevel(szPrev, sz ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetInsertInitLevel == nil {
		return nil
	}
	return mt.Hooks.GetInsertInitLevel(szPrev, sz, m)
}

// GetInsertFinalizeLevel produces the statement that finalizes this level
// after all insertions into it are complete.
func (mt *ModeType) GetInsertFinalizeLevel(szPrev, sz ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetInsertFinalizeLevel == nil {
		return nil
	}
	return mt.Hooks.GetInsertFinalizeLevel(szPrev, sz, m)
}

// GetAppendCoord produces the statement that appends coordinate i at
// position p during in-order (append-only) construction.
func (mt *ModeType) GetAppendCoord(p, i ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetAppendCoord == nil {
		return nil
	}
	return mt.Hooks.GetAppendCoord(p, i, m)
}

// GetAppendEdges produces the statement that records the parent-to-child
// edge range [pBegin, pEnd) for the parent at pPrev.
func (mt *ModeType) GetAppendEdges(pPrev, pBegin, pEnd ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetAppendEdges == nil {
		return nil
	}
	return mt.Hooks.GetAppendEdges(pPrev, pBegin, pEnd, m)
}

// GetAppendInitEdges produces setup run once before a run of edge appends
// over the parent position range [pPrevBegin, pPrevEnd).
func (mt *ModeType) GetAppendInitEdges(pPrevBegin, pPrevEnd ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetAppendInitEdges == nil {
		return nil
	}
	return mt.Hooks.GetAppendInitEdges(pPrevBegin, pPrevEnd, m)
}

// GetAppendInitLevel produces the statement that allocates this level's
// storage ahead of a run of appends.
func (mt *ModeType) GetAppendInitLevel(szPrev, sz ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetAppendInitLevel == nil {
		return nil
	}
	return mt.Hooks.GetAppendInitLevel(szPrev, sz, m)
}

// GetAppendFinalizeLevel produces the statement that finalizes this level
// after all appends into it are complete.
func (mt *ModeType) GetAppendFinalizeLevel(szPrev, sz ir.Expr, m *Mode) ir.Stmt {
	if mt.Hooks.GetAppendFinalizeLevel == nil {
		return nil
	}
	return mt.Hooks.GetAppendFinalizeLevel(szPrev, sz, m)
}

// GetSize produces the expression for this mode's logical size, or nil if
// this kind doesn't have one independent of its parent's size.
func (mt *ModeType) GetSize(m *Mode) ir.Expr {
	if mt.Hooks.GetSize == nil {
		return nil
	}
	return mt.Hooks.GetSize(m)
}

// getArray answers this mode's contribution to a ModePack's "array at
// position i" query.
func (mt *ModeType) getArray(i int, m *Mode) ir.Expr {
	if mt.Hooks.GetArray == nil {
		return nil
	}
	return mt.Hooks.GetArray(i, m)
}
