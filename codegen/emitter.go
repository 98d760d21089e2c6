package codegen

import (
	"fmt"
	"strings"

	"github.com/keithc-ca/taco/ir"
	"github.com/keithc-ca/taco/report"
)

// Emit renders fn as C source text. It is the package's sole entry point,
// corresponding to CodeGen_C::compile followed by the Function visitor.
func Emit(fn *ir.Function) string {
	e := &Emitter{}
	fn.Accept(e)
	return e.out.String()
}

// Emitter is a strict ir.Visitor: every node kind it doesn't explicitly
// handle is a compile-time error, so adding a new IR node forces this
// file to be updated (spec.md §4.4's rationale for strict visitors).
type Emitter struct {
	out    strings.Builder
	indent int
	varMap map[*ir.Var]string
}

func (e *Emitter) writeIndent() {
	e.out.WriteString(strings.Repeat("  ", e.indent))
}

func toCType(typ ir.ComponentType, isPtr bool) string {
	var base string
	switch typ {
	case ir.Int:
		base = "int"
	case ir.Float:
		base = "float"
	case ir.Double:
		base = "double"
	default:
		report.ICE("unknown component type %v in codegen", typ)
	}
	if isPtr {
		base += "*"
	}
	return base
}

func genVectorizePragma(width int) string {
	if width == 0 {
		return "#pragma clang loop interleave(enable) vectorize(enable)"
	}
	return fmt.Sprintf("#pragma clang loop interleave(enable) vectorize_width(%d)", width)
}

// -----------------------------------------------------------------------------
// StmtVisitor

func (e *Emitter) VisitFunction(f *ir.Function) {
	vf := newVarFinder(f.Inputs, f.Outputs)
	f.Body.Accept(vf)
	e.varMap = vf.varMap

	params := make([]string, 0, len(f.Inputs)+len(f.Outputs))
	for _, v := range f.Inputs {
		params = append(params, toCType(v.Type(), v.IsPtr())+" "+v.Name)
	}
	for _, v := range f.Outputs {
		params = append(params, toCType(v.Type(), v.IsPtr())+" "+v.Name)
	}
	e.out.WriteString("int " + f.Name + "(" + strings.Join(params, ", ") + ") {\n")
	e.indent++

	for _, v := range vf.declarations() {
		e.writeIndent()
		e.out.WriteString(toCType(v.Type(), v.IsPtr()) + " " + e.varMap[v] + ";\n")
	}

	for _, s := range f.Body.Stmts {
		s.Accept(e)
	}

	e.writeIndent()
	e.out.WriteString("return 0;\n")
	e.indent--
	e.out.WriteString("}\n")
}

func (e *Emitter) VisitBlock(b *ir.Block) {
	e.writeIndent()
	e.out.WriteString("{\n")
	e.indent++
	for _, s := range b.Stmts {
		s.Accept(e)
	}
	e.indent--
	e.writeIndent()
	e.out.WriteString("}\n")
}

func (e *Emitter) VisitAssign(a *ir.Assign) {
	e.writeIndent()
	a.Lhs.Accept(e)
	e.out.WriteString(" = ")
	a.Rhs.Accept(e)
	e.out.WriteString(";\n")
}

func (e *Emitter) VisitStore(s *ir.Store) {
	e.writeIndent()
	s.Base.Accept(e)
	e.out.WriteString("[")
	s.Index.Accept(e)
	e.out.WriteString("] = ")
	s.Rhs.Accept(e)
	e.out.WriteString(";\n")
}

func (e *Emitter) VisitFor(f *ir.For) {
	if f.Kind == ir.Vectorized {
		e.writeIndent()
		e.out.WriteString(genVectorizePragma(f.VecWidth) + "\n")
	}

	e.writeIndent()
	e.out.WriteString("for (")
	f.Var.Accept(e)
	e.out.WriteString(" = ")
	f.Start.Accept(e)
	e.out.WriteString("; ")
	f.Var.Accept(e)
	e.out.WriteString(" < ")
	f.End.Accept(e)
	e.out.WriteString("; ")
	f.Var.Accept(e)
	e.out.WriteString(" += ")
	f.Incr.Accept(e)
	e.out.WriteString(")\n")

	e.emitLoopBody(f.Body)
}

func (e *Emitter) VisitWhile(w *ir.While) {
	// The target compiler may not honor a vectorize pragma on a while
	// loop, but the source prints it regardless, so we do too.
	if w.Kind == ir.Vectorized {
		e.writeIndent()
		e.out.WriteString(genVectorizePragma(w.VecWidth) + "\n")
	}

	e.writeIndent()
	e.out.WriteString("while (")
	w.Cond.Accept(e)
	e.out.WriteString(")\n")

	e.emitLoopBody(w.Body)
}

// emitLoopBody wraps a non-Block loop body in braces so a single
// statement still gets its own scope in the printed source.
func (e *Emitter) emitLoopBody(body ir.Stmt) {
	if b, ok := body.(*ir.Block); ok {
		b.Accept(e)
		return
	}
	e.writeIndent()
	e.out.WriteString("{\n")
	e.indent++
	body.Accept(e)
	e.indent--
	e.writeIndent()
	e.out.WriteString("}\n")
}

func (e *Emitter) VisitIf(i *ir.If) {
	e.writeIndent()
	e.out.WriteString("if (")
	i.Cond.Accept(e)
	e.out.WriteString(")\n")
	e.emitLoopBody(i.Then)
	if i.Else != nil {
		e.writeIndent()
		e.out.WriteString("else\n")
		e.emitLoopBody(i.Else)
	}
}

// -----------------------------------------------------------------------------
// ExprVisitor

func (e *Emitter) VisitVar(v *ir.Var) {
	name, ok := e.varMap[v]
	if !ok {
		report.ICE("var %q not found in var map during codegen", v.Name)
	}
	e.out.WriteString(name)
}

func (e *Emitter) VisitLit(l *ir.Lit) {
	switch l.Type() {
	case ir.Int:
		fmt.Fprintf(&e.out, "%d", l.IntVal)
	case ir.Float, ir.Double:
		fmt.Fprintf(&e.out, "%g", l.FloatVal)
	default:
		report.ICE("unknown component type %v in codegen", l.Type())
	}
}

func (e *Emitter) VisitBinary(b *ir.BinaryExpr) {
	e.out.WriteString("(")
	b.X.Accept(e)
	e.out.WriteString(" " + b.Op.String() + " ")
	b.Y.Accept(e)
	e.out.WriteString(")")
}

func (e *Emitter) VisitUnary(u *ir.UnaryExpr) {
	e.out.WriteString("(" + u.Op.String())
	u.X.Accept(e)
	e.out.WriteString(")")
}

func (e *Emitter) VisitLoad(l *ir.Load) {
	l.Base.Accept(e)
	e.out.WriteString("[")
	l.Index.Accept(e)
	e.out.WriteString("]")
}

func (e *Emitter) VisitCast(c *ir.Cast) {
	e.out.WriteString("(" + toCType(c.Type(), c.IsPtr()) + ")(")
	c.Src.Accept(e)
	e.out.WriteString(")")
}
