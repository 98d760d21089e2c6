package lower

import (
	"fmt"
	"strings"
	"testing"

	"github.com/keithc-ca/taco/codegen"
	"github.com/keithc-ca/taco/format"
	"github.com/keithc-ca/taco/ir"
)

// hygienicName locates the local declaration line for original name
// orig (a loop induction variable, never an input/output, so it is
// always hygienically renamed) and returns the name the emitter actually
// assigned it.
func hygienicName(t *testing.T, out, orig string) string {
	t.Helper()
	prefix := "int _" + orig + "_"
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSuffix(strings.TrimPrefix(trimmed, "int "), ";")
		}
	}
	t.Fatalf("no local declaration found for %q in:\n%s", orig, out)
	return ""
}

func TestBuildModesDense(t *testing.T) {
	tree, err := format.Parse("d")
	if err != nil {
		t.Fatal(err)
	}
	x := ir.NewVar("x", ir.Int, true)
	modes := BuildModes(Tensor{Name: "x", Tree: tree, Var: x})
	// "d" has depth 2: the Dense level plus the implicit terminal Values
	// level (spec.md §3).
	if len(modes) != 2 {
		t.Fatalf("expected 2 modes, got %d", len(modes))
	}
	if got, want := modes[0].Name(), "x1"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if !modes[1].HasVar("vals") {
		t.Error("expected the terminal Values level to have its vals array bound")
	}
}

func TestBuildModesCSR(t *testing.T) {
	tree, err := format.Parse("ds")
	if err != nil {
		t.Fatal(err)
	}
	a := ir.NewVar("A", ir.Int, true)
	modes := BuildModes(Tensor{Name: "A", Tree: tree, Var: a})
	// "ds" has depth 3: Dense, Sparse, and the implicit Values level.
	if len(modes) != 3 {
		t.Fatalf("expected 3 modes, got %d", len(modes))
	}
	if !modes[1].HasVar("pos") || !modes[1].HasVar("crd") {
		t.Error("expected the sparse level to have pos/crd array vars bound")
	}
	if !modes[2].HasVar("vals") {
		t.Error("expected the terminal Values level to have its vals array bound")
	}
}

func TestDenseCopyLowersToExpectedLoop(t *testing.T) {
	n := ir.NewVar("n", ir.Int, false)
	fn := DenseCopy(n)
	out := codegen.Emit(fn)

	iName := hygienicName(t, out, "i")
	if !strings.Contains(out, fmt.Sprintf("for (%s = 0; %s < n; %s += 1)", iName, iName, iName)) {
		t.Errorf("unexpected lowering:\n%s", out)
	}
	if !strings.Contains(out, fmt.Sprintf("y[%s] = x[%s];", iName, iName)) {
		t.Errorf("unexpected lowering:\n%s", out)
	}
}

func TestSparseToDenseCopyLowersToPosIterationLoop(t *testing.T) {
	fn := SparseToDenseCopy()
	out := codegen.Emit(fn)

	pName := hygienicName(t, out, "p")
	if !strings.Contains(out, fmt.Sprintf("x1_pos[0]; %s < x1_pos[", pName)) {
		t.Errorf("expected position iteration from pos[0], got:\n%s", out)
	}
	if !strings.Contains(out, fmt.Sprintf("x1_crd[%s]", pName)) {
		t.Errorf("expected the coordinate read off the crd array, got:\n%s", out)
	}
}

func TestCSRSpMVLowersToNestedLoops(t *testing.T) {
	n := ir.NewVar("n", ir.Int, false)
	fn := CSRSpMV(n)
	out := codegen.Emit(fn)

	iName := hygienicName(t, out, "i")
	pName := hygienicName(t, out, "p")
	if !strings.Contains(out, fmt.Sprintf("for (%s = 0; %s < n; %s += 1)", iName, iName, iName)) {
		t.Errorf("expected an outer dense row loop, got:\n%s", out)
	}
	if !strings.Contains(out, fmt.Sprintf("for (%s = A2_pos[%s]; %s < A2_pos[", pName, iName, pName)) {
		t.Errorf("expected an inner compressed column loop over pos[i]..pos[i+1], got:\n%s", out)
	}
}
