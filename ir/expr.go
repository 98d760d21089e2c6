package ir

// Expr is the interface every expression node implements: a scalar or
// pointer-typed value carrying a ComponentType, plus a visitor hook.
type Expr interface {
	Type() ComponentType
	IsPtr() bool
	Accept(v ExprVisitor)
}

// Var is a scalar or pointer variable reference. Two *Var values with the
// same Name are still distinct nodes: the emitter keys its naming table on
// pointer identity, so constructing a fresh *Var always introduces a fresh
// emitted name even if the original Name collides with another variable's.
type Var struct {
	exprBase
	Name string
}

// NewVar creates a variable expression of the given component type.
func NewVar(name string, typ ComponentType, ptr bool) *Var {
	return &Var{exprBase: exprBase{typ: typ, ptr: ptr}, Name: name}
}

func (v *Var) Accept(vis ExprVisitor) { vis.VisitVar(v) }

// Lit is a literal scalar value.
type Lit struct {
	exprBase
	IntVal   int64
	FloatVal float64
}

// NewIntLit creates an integer literal.
func NewIntLit(val int64) *Lit {
	return &Lit{exprBase: exprBase{typ: Int}, IntVal: val}
}

// NewFloatLit creates a literal of the given floating-point component type
// (Float or Double).
func NewFloatLit(val float64, typ ComponentType) *Lit {
	return &Lit{exprBase: exprBase{typ: typ}, FloatVal: val}
}

func (l *Lit) Accept(vis ExprVisitor) { vis.VisitLit(l) }

// BinaryExpr applies a binary operator to two sub-expressions.
type BinaryExpr struct {
	exprBase
	Op   BinOp
	X, Y Expr
}

// NewBinary creates a binary expression of the given result component type.
func NewBinary(op BinOp, x, y Expr, typ ComponentType) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{typ: typ}, Op: op, X: x, Y: y}
}

func (b *BinaryExpr) Accept(vis ExprVisitor) { vis.VisitBinary(b) }

// UnaryExpr applies a unary operator to a sub-expression.
type UnaryExpr struct {
	exprBase
	Op UnOp
	X  Expr
}

// NewUnary creates a unary expression of the given result component type.
func NewUnary(op UnOp, x Expr, typ ComponentType) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{typ: typ}, Op: op, X: x}
}

func (u *UnaryExpr) Accept(vis ExprVisitor) { vis.VisitUnary(u) }

// Load reads Base[Index]: a typed load from a pointer-typed array
// expression at a scalar index expression.
type Load struct {
	exprBase
	Base  Expr
	Index Expr
}

// NewLoad creates a load of the given result component type.
func NewLoad(base, index Expr, typ ComponentType) *Load {
	return &Load{exprBase: exprBase{typ: typ}, Base: base, Index: index}
}

func (l *Load) Accept(vis ExprVisitor) { vis.VisitLoad(l) }

// Cast converts Src to a different component type.
type Cast struct {
	exprBase
	Src Expr
}

// NewCast creates a cast to the given target component type.
func NewCast(src Expr, typ ComponentType) *Cast {
	return &Cast{exprBase: exprBase{typ: typ}, Src: src}
}

func (c *Cast) Accept(vis ExprVisitor) { vis.VisitCast(c) }
