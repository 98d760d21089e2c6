// Package format describes a tensor's storage layout as an ordered chain of
// per-mode storage kinds, terminated by a values leaf.
package format

import "fmt"

// TreeLevel is one node in a format tree: a storage kind wrapping the
// remainder of the chain, or the terminal Values leaf.
//
// Format trees are built once per tensor declaration and are immutable
// afterward: there is no mutation API here, only construction and
// traversal.
type TreeLevel interface {
	// Children returns the wrapped sub-chain, or nil for Values.
	Children() TreeLevel

	// Accept dispatches to the matching Visit method on v.
	Accept(v TreeVisitor)

	// Code is the single-character format code for this kind ('v' for
	// Values, which never appears in a format string but is useful for
	// diagnostics and Render).
	Code() byte
}

// levelBase holds the single child every non-leaf level owns.
type levelBase struct {
	child TreeLevel
}

func (l levelBase) Children() TreeLevel { return l.child }

// Values is the terminal tree level: it stores the tensor's actual scalar
// values and terminates every format chain. Exactly one Values node exists
// per format tree, and it is always the deepest.
type Values struct{}

func (Values) Children() TreeLevel   { return nil }
func (Values) Code() byte            { return 'v' }
func (vl Values) Accept(v TreeVisitor) { v.VisitValues(vl) }

// Dense wraps a sub-level with dense (fully stored, every coordinate
// present) storage.
type Dense struct{ levelBase }

func (d Dense) Code() byte          { return 'd' }
func (d Dense) Accept(v TreeVisitor) { v.VisitDense(d) }

// Sparse wraps a sub-level with compressed-sparse storage: not every
// coordinate in the mode's range is stored.
type Sparse struct{ levelBase }

func (s Sparse) Code() byte          { return 's' }
func (s Sparse) Accept(v TreeVisitor) { v.VisitSparse(s) }

// Fixed wraps a sub-level with fixed-fanout sparse storage: every stored
// parent coordinate has exactly the same number of children.
type Fixed struct{ levelBase }

func (f Fixed) Code() byte          { return 'f' }
func (f Fixed) Accept(v TreeVisitor) { v.VisitFixed(f) }

// Replicated wraps a sub-level allowing duplicate parent-to-child edges.
type Replicated struct{ levelBase }

func (r Replicated) Code() byte          { return 'r' }
func (r Replicated) Accept(v TreeVisitor) { v.VisitReplicated(r) }

// Factory functions. These are the only way to build a TreeLevel: a chain is
// assembled innermost-first by wrapping NewValues() with zero or more of the
// level constructors below.

// NewValues returns the terminal Values leaf.
func NewValues() TreeLevel { return Values{} }

// NewDense wraps sub in a Dense level.
func NewDense(sub TreeLevel) TreeLevel { return Dense{levelBase{sub}} }

// NewSparse wraps sub in a Sparse level.
func NewSparse(sub TreeLevel) TreeLevel { return Sparse{levelBase{sub}} }

// NewFixed wraps sub in a Fixed level.
func NewFixed(sub TreeLevel) TreeLevel { return Fixed{levelBase{sub}} }

// NewReplicated wraps sub in a Replicated level.
func NewReplicated(sub TreeLevel) TreeLevel { return Replicated{levelBase{sub}} }

// Equal reports whether two format trees have the same structure: the same
// sequence of kinds down to and including Values.
func Equal(a, b TreeLevel) bool {
	for {
		if a.Code() != b.Code() {
			return false
		}
		if _, isValues := a.(Values); isValues {
			return true
		}
		a, b = a.Children(), b.Children()
	}
}

// Depth returns the number of levels in the chain, including the terminal
// Values leaf. A tensor of rank n has a format tree of depth n+1.
func Depth(tl TreeLevel) int {
	n := 0
	for tl != nil {
		n++
		tl = tl.Children()
	}
	return n
}

// String renders a node and the sub-chain below it in constructor form,
// e.g. "Dense(Sparse(Values))", for diagnostics.
func (d Dense) String() string      { return fmt.Sprintf("Dense(%v)", d.Children()) }
func (s Sparse) String() string     { return fmt.Sprintf("Sparse(%v)", s.Children()) }
func (f Fixed) String() string      { return fmt.Sprintf("Fixed(%v)", f.Children()) }
func (r Replicated) String() string { return fmt.Sprintf("Replicated(%v)", r.Children()) }
func (Values) String() string       { return "Values" }
