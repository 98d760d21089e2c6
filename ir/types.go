// Package ir defines the low-level imperative intermediate representation
// that format-directed lowering targets: scalar/pointer variables, typed
// loads and stores, arithmetic, comparisons, conditionals, loops tagged
// with a loop kind, blocks, and function definitions.
//
// Expr and Stmt are two disjoint node hierarchies. Nodes are always held by
// pointer so that reference identity is preserved across a shared DAG: a
// node may be referenced multiple times by identity, and identity (not
// structural equality) is the key the emitter's variable table uses.
// "Undefined" fragments — the empty statement or expression a mode hook
// returns to mean "not supported" — are simply nil, Go's native way of
// expressing absence rather than a sentinel wrapper type.
package ir

import "fmt"

// ComponentType is the set of scalar element types an Expr can carry.
type ComponentType int

const (
	Int ComponentType = iota
	Float
	Double
)

func (c ComponentType) String() string {
	switch c {
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("ComponentType(%d)", int(c))
	}
}

// LoopKind tags a For or While loop with the lowering strategy it should be
// emitted with.
type LoopKind int

const (
	Serial LoopKind = iota
	Parallel
	Vectorized
)

func (k LoopKind) String() string {
	switch k {
	case Serial:
		return "serial"
	case Parallel:
		return "parallel"
	case Vectorized:
		return "vectorized"
	default:
		return fmt.Sprintf("LoopKind(%d)", int(k))
	}
}

// BinOp enumerates the binary operators BinaryExpr supports.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	LAnd
	LOr
)

var binOpSymbols = map[BinOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%",
	Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	LAnd: "&&", LOr: "||",
}

func (op BinOp) String() string { return binOpSymbols[op] }

// UnOp enumerates the unary operators UnaryExpr supports.
type UnOp int

const (
	Neg UnOp = iota
	Not
)

var unOpSymbols = map[UnOp]string{Neg: "-", Not: "!"}

func (op UnOp) String() string { return unOpSymbols[op] }

// exprBase is embedded by every concrete Expr to supply Type/IsPtr without
// repeating the same two fields and getters on each node.
type exprBase struct {
	typ ComponentType
	ptr bool
}

func (e exprBase) Type() ComponentType { return e.typ }
func (e exprBase) IsPtr() bool         { return e.ptr }
