package ir

// Stmt is the interface every statement node implements.
type Stmt interface {
	Accept(v StmtVisitor)
}

// Assign assigns the value of Rhs to the scalar variable Lhs.
type Assign struct {
	Lhs *Var
	Rhs Expr
}

// NewAssign creates an assignment statement.
func NewAssign(lhs *Var, rhs Expr) *Assign { return &Assign{Lhs: lhs, Rhs: rhs} }

func (a *Assign) Accept(v StmtVisitor) { v.VisitAssign(a) }

// Store writes Rhs to Base[Index].
type Store struct {
	Base  Expr
	Index Expr
	Rhs   Expr
}

// NewStore creates a store statement.
func NewStore(base, index, rhs Expr) *Store { return &Store{Base: base, Index: index, Rhs: rhs} }

func (s *Store) Accept(v StmtVisitor) { v.VisitStore(s) }

// For is a counted loop: Var ranges from Start to End (exclusive) in steps
// of Incr, tagged with a LoopKind that determines what pragma, if any, the
// emitter prints above the loop header. VecWidth is only meaningful when
// Kind is Vectorized; zero requests width-unbounded vectorization.
type For struct {
	Var      *Var
	Start    Expr
	End      Expr
	Incr     Expr
	Kind     LoopKind
	VecWidth int
	Body     Stmt
}

// NewFor creates a serial for loop incrementing by 1. Use the Kind/VecWidth
// fields directly to tag it parallel or vectorized.
func NewFor(v *Var, start, end Expr, body Stmt) *For {
	return &For{Var: v, Start: start, End: end, Incr: NewIntLit(1), Kind: Serial, Body: body}
}

func (f *For) Accept(v StmtVisitor) { v.VisitFor(f) }

// While is a condition-guarded loop. Like For, it carries a LoopKind and
// optional vector width, since the source reserves the vectorize pragma for
// while loops too even though it is unclear whether a downstream compiler
// will honor it there.
type While struct {
	Cond     Expr
	Kind     LoopKind
	VecWidth int
	Body     Stmt
}

// NewWhile creates a serial while loop.
func NewWhile(cond Expr, body Stmt) *While {
	return &While{Cond: cond, Kind: Serial, Body: body}
}

func (w *While) Accept(v StmtVisitor) { v.VisitWhile(w) }

// If is a conditional. Else may be nil.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// NewIf creates a conditional with no else branch.
func NewIf(cond Expr, then Stmt) *If { return &If{Cond: cond, Then: then} }

func (i *If) Accept(v StmtVisitor) { v.VisitIf(i) }

// Block is a sequence of statements sharing a lexical scope.
type Block struct {
	Stmts []Stmt
}

// NewBlock creates a block from the given statements.
func NewBlock(stmts ...Stmt) *Block { return &Block{Stmts: stmts} }

func (b *Block) Accept(v StmtVisitor) { v.VisitBlock(b) }

// Function is a top-level definition: an ordered list of input variables,
// an ordered list of output variables, and a body. Inputs and outputs must
// be *Var nodes and must not repeat the same node twice — that is an IR
// well-formedness violation the emitter treats as fatal.
type Function struct {
	Name    string
	Inputs  []*Var
	Outputs []*Var
	Body    *Block
}

// NewFunction creates a function definition.
func NewFunction(name string, inputs, outputs []*Var, body *Block) *Function {
	return &Function{Name: name, Inputs: inputs, Outputs: outputs, Body: body}
}

func (f *Function) Accept(v StmtVisitor) { v.VisitFunction(f) }
