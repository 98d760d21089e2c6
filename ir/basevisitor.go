package ir

// BaseVisitor is the permissive counterpart to Visitor: every method is a
// default recursive descent over a node's children in their canonical
// order. A pass embeds BaseVisitor and overrides only the methods it needs;
// unset methods fall through to the default walk.
//
// Go has no virtual dispatch: an embedded BaseVisitor calling its own
// methods would never see an outer type's overrides. BaseVisitor is
// therefore constructed with Self pointing back at the outer visitor, and
// every default method recurses through Self instead of through the
// embedded receiver. Embedders must call NewBaseVisitor(self) from their own
// constructor, passing themselves.
type BaseVisitor struct {
	Self Visitor
}

// NewBaseVisitor returns a BaseVisitor that recurses through self.
func NewBaseVisitor(self Visitor) BaseVisitor {
	return BaseVisitor{Self: self}
}

func (BaseVisitor) VisitVar(*Var) {}
func (BaseVisitor) VisitLit(*Lit) {}

func (w BaseVisitor) VisitBinary(b *BinaryExpr) {
	b.X.Accept(w.Self)
	b.Y.Accept(w.Self)
}

func (w BaseVisitor) VisitUnary(u *UnaryExpr) {
	u.X.Accept(w.Self)
}

func (w BaseVisitor) VisitLoad(l *Load) {
	l.Base.Accept(w.Self)
	l.Index.Accept(w.Self)
}

func (w BaseVisitor) VisitCast(c *Cast) {
	c.Src.Accept(w.Self)
}

func (w BaseVisitor) VisitAssign(a *Assign) {
	a.Lhs.Accept(w.Self)
	a.Rhs.Accept(w.Self)
}

func (w BaseVisitor) VisitStore(s *Store) {
	s.Base.Accept(w.Self)
	s.Index.Accept(w.Self)
	s.Rhs.Accept(w.Self)
}

func (w BaseVisitor) VisitFor(f *For) {
	f.Var.Accept(w.Self)
	f.Start.Accept(w.Self)
	f.End.Accept(w.Self)
	f.Incr.Accept(w.Self)
	f.Body.Accept(w.Self)
}

func (w BaseVisitor) VisitWhile(wl *While) {
	wl.Cond.Accept(w.Self)
	wl.Body.Accept(w.Self)
}

func (w BaseVisitor) VisitIf(i *If) {
	i.Cond.Accept(w.Self)
	i.Then.Accept(w.Self)
	if i.Else != nil {
		i.Else.Accept(w.Self)
	}
}

func (w BaseVisitor) VisitBlock(b *Block) {
	for _, s := range b.Stmts {
		s.Accept(w.Self)
	}
}

func (w BaseVisitor) VisitFunction(f *Function) {
	for _, in := range f.Inputs {
		in.Accept(w.Self)
	}
	for _, out := range f.Outputs {
		out.Accept(w.Self)
	}
	f.Body.Accept(w.Self)
}
