package format

// TreeVisitor is the strict visitor contract for format trees: one method
// per concrete level kind, with no defaults. A type can only be passed to
// Accept once it implements every method, which is how exhaustiveness is
// enforced in a language without sum types (spec.md §4.4, §9).
type TreeVisitor interface {
	VisitValues(Values)
	VisitDense(Dense)
	VisitSparse(Sparse)
	VisitFixed(Fixed)
	VisitReplicated(Replicated)
}

// TreeWalker is the permissive counterpart: every method is a default
// recursive descent into the wrapped child. A pass embeds TreeWalker and
// overrides only the methods it cares about.
//
// Go has no virtual dispatch, so a TreeWalker embedded by value can't know
// which overrides its outer type applied; it is constructed with Self
// pointing back at that outer type, and every default method recurses
// through Self rather than through the embedded receiver. Callers must set
// Self to themselves (see NewTreeWalker).
type TreeWalker struct {
	Self TreeVisitor
}

// NewTreeWalker returns a TreeWalker that recurses through self. Embedders
// call this from their own constructor, passing themselves as self.
func NewTreeWalker(self TreeVisitor) TreeWalker {
	return TreeWalker{Self: self}
}

func (TreeWalker) VisitValues(Values) {}

func (w TreeWalker) VisitDense(d Dense) {
	if ch := d.Children(); ch != nil {
		ch.Accept(w.Self)
	}
}

func (w TreeWalker) VisitSparse(s Sparse) {
	if ch := s.Children(); ch != nil {
		ch.Accept(w.Self)
	}
}

func (w TreeWalker) VisitFixed(f Fixed) {
	if ch := f.Children(); ch != nil {
		ch.Accept(w.Self)
	}
}

func (w TreeWalker) VisitReplicated(r Replicated) {
	if ch := r.Children(); ch != nil {
		ch.Accept(w.Self)
	}
}
