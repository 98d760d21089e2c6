package modetype

import (
	"testing"

	"github.com/keithc-ca/taco/ir"
)

func TestUndefinedModeName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic from report.ICE path")
		}
	}()
	var m Mode
	m.Name()
}

func TestModeNameFormat(t *testing.T) {
	a := ir.NewVar("A", ir.Int, true)
	m := NewMode(a, ir.NewIntLit(10), 0, Dense, nil, 0, nil)
	if got, want := m.Name(), "A1"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestAddVarAndGetVar(t *testing.T) {
	a := ir.NewVar("A", ir.Int, true)
	m := NewMode(a, ir.NewIntLit(10), 0, Sparse, nil, 0, nil)

	if m.HasVar(posArrayVar) {
		t.Fatal("fresh mode should have no bound vars")
	}
	pos := ir.NewVar("A1_pos", ir.Int, true)
	m.AddVar(posArrayVar, pos)

	if !m.HasVar(posArrayVar) {
		t.Fatal("expected HasVar true after AddVar")
	}
	if got := m.GetVar(posArrayVar); got != pos {
		t.Errorf("GetVar returned a different node than was bound")
	}
}

func TestDenseCapabilities(t *testing.T) {
	if !Dense.Full || !Dense.Ordered || !Dense.Unique || !Dense.Branchless || !Dense.Compact {
		t.Error("Dense should be full, ordered, unique, branchless, and compact")
	}
	if !Dense.HasCoordValIter || !Dense.HasLocate {
		t.Error("Dense should support coord-val iteration and locate")
	}
	if Dense.HasCoordPosIter || Dense.HasAppend {
		t.Error("Dense should not claim pos-iteration or append capability")
	}
}

func TestSparseCapabilities(t *testing.T) {
	if Sparse.Full || Sparse.Branchless {
		t.Error("Sparse should not be full or branchless")
	}
	if !Sparse.Ordered || !Sparse.Unique || !Sparse.Compact {
		t.Error("Sparse should be ordered, unique, and compact")
	}
	if !Sparse.HasCoordPosIter || !Sparse.HasLocate || !Sparse.HasAppend {
		t.Error("Sparse should support pos-iteration, locate, and append")
	}
}

func TestReplicatedHasNoCapabilities(t *testing.T) {
	mt := Replicated
	if mt.Full || mt.Ordered || mt.Unique || mt.Branchless || mt.Compact {
		t.Error("Replicated should claim no structural properties")
	}
	if mt.HasCoordValIter || mt.HasCoordPosIter || mt.HasLocate || mt.HasInsert || mt.HasAppend {
		t.Error("Replicated should claim no capabilities")
	}
}

func TestHookWrapperDefaultsToEmptyFragment(t *testing.T) {
	var m Mode
	frag := Replicated.GetCoordIter(nil, &m)
	if !frag.Empty() {
		t.Error("expected an empty IterFragment from an unregistered hook")
	}
	access := Replicated.GetCoordAccess(nil, nil, &m)
	if !access.Empty() {
		t.Error("expected an empty AccessFragment from an unregistered hook")
	}
	loc := Replicated.GetLocate(nil, nil, &m)
	if !loc.Empty() {
		t.Error("expected an empty LocateFragment from an unregistered hook")
	}
	if s := Replicated.GetInsertCoord(nil, nil, &m); s != nil {
		t.Error("expected a nil statement from an unregistered insert hook")
	}
}

func TestRegistryLookup(t *testing.T) {
	cases := map[byte]*ModeType{
		'd': Dense,
		's': Sparse,
		'f': Fixed,
		'r': Replicated,
		'v': Values,
	}
	for code, want := range cases {
		if got := Lookup(code); got != want {
			t.Errorf("Lookup(%q) = %v, want %v", code, got, want)
		}
	}
	if Lookup('z') != nil {
		t.Error("expected nil for an unregistered code")
	}
}

func TestModePackGetArray(t *testing.T) {
	a := ir.NewVar("A", ir.Int, true)
	vm := NewMode(a, nil, 1, Values, nil, 0, Dense)
	vals := ir.NewVar("A_vals", ir.Double, true)
	vm.AddVar(valsArrayVar, vals)

	dm := NewMode(a, ir.NewIntLit(10), 0, Dense, nil, 0, nil)

	pack := NewModePack([]Mode{dm, vm})
	if got := pack.GetArray(0); got != vals {
		t.Errorf("GetArray(0) = %v, want the bound vals var", got)
	}
	if got := pack.GetArray(99); got != nil {
		t.Errorf("GetArray(99) = %v, want nil", got)
	}
}
