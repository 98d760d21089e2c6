// Package modetype implements the capability-driven mode-type registry:
// each storage kind (dense, sparse, fixed, replicated, values) is a bundle
// of boolean capability bits plus a table of hook closures that produce IR
// fragments rather than runtime values (spec.md §4.2).
//
// Rather than modeling ModeType as a base class with overridable virtual
// methods — the source's approach — each kind is a record of capability
// bits plus a Hooks value of closures, per spec.md §9's own recommendation
// ("Capability-driven dispatch"): a hook left nil is exactly "not
// applicable," and ModeType's wrapper methods turn a nil hook into the
// empty fragment the contract promises without every kind needing to
// redeclare every method.
package modetype

import "github.com/keithc-ca/taco/ir"

// IterFragment is the (init, begin, end) triple returned by an iteration
// hook: a setup statement (nil means none required) plus the expressions
// bounding the iteration range.
type IterFragment struct {
	Init  ir.Stmt
	Begin ir.Expr
	End   ir.Expr
}

// Empty reports whether the fragment carries no iteration range, i.e. the
// hook that produced it is unsupported for this mode.
func (f IterFragment) Empty() bool { return f.Begin == nil && f.End == nil }

// AccessFragment is the (guard, coord, valid) triple returned by a
// coordinate-access hook.
type AccessFragment struct {
	Guard ir.Stmt
	Coord ir.Expr
	Valid ir.Expr
}

// Empty reports whether the fragment is unsupported.
func (f AccessFragment) Empty() bool { return f.Coord == nil }

// LocateFragment is the (guard, pos, found) triple returned by getLocate.
type LocateFragment struct {
	Guard ir.Stmt
	Pos   ir.Expr
	Found ir.Expr
}

// Empty reports whether the fragment is unsupported.
func (f LocateFragment) Empty() bool { return f.Pos == nil }

// Hooks is the vtable of IR-producing closures a ModeType supplies. Every
// field is optional: a nil hook is exactly the "not applicable" default the
// source expresses with empty-fragment-returning virtual methods, and
// ModeType's wrapper methods below apply that default uniformly so
// registering a kind only requires filling in the hooks it actually
// implements.
type Hooks struct {
	GetCoordIter   func(i []ir.Expr, m *Mode) IterFragment
	GetCoordAccess func(parentPos ir.Expr, i []ir.Expr, m *Mode) AccessFragment
	GetPosIter     func(parentPos ir.Expr, m *Mode) IterFragment
	GetPosAccess   func(pos ir.Expr, i []ir.Expr, m *Mode) AccessFragment
	GetLocate      func(parentPos ir.Expr, i []ir.Expr, m *Mode) LocateFragment

	GetInsertCoord         func(p ir.Expr, i []ir.Expr, m *Mode) ir.Stmt
	GetInsertInitCoords    func(pBegin, pEnd ir.Expr, m *Mode) ir.Stmt
	GetInsertInitLevel     func(szPrev, sz ir.Expr, m *Mode) ir.Stmt
	GetInsertFinalizeLevel func(szPrev, sz ir.Expr, m *Mode) ir.Stmt

	GetAppendCoord         func(p, i ir.Expr, m *Mode) ir.Stmt
	GetAppendEdges         func(pPrev, pBegin, pEnd ir.Expr, m *Mode) ir.Stmt
	GetAppendInitEdges     func(pPrevBegin, pPrevEnd ir.Expr, m *Mode) ir.Stmt
	GetAppendInitLevel     func(szPrev, sz ir.Expr, m *Mode) ir.Stmt
	GetAppendFinalizeLevel func(szPrev, sz ir.Expr, m *Mode) ir.Stmt

	GetSize func(m *Mode) ir.Expr

	// GetArray answers a ModePack's "array at position i" query for this
	// mode specifically; an undefined (nil) result means this mode doesn't
	// own that array slot.
	GetArray func(i int, m *Mode) ir.Expr
}
