// Package python holds the target representation produced by lowering: a
// Python-shaped statement and expression tree owned by this repository, plus
// a renderer that prints it as Python source. Producing target semantics and
// printing target syntax are separate stages, so the tree can feed other
// renderers.
package python

// Stmt is a statement in the target tree.
type Stmt interface {
	stmtNode()
}

// Expr is an expression in the target tree.
type Expr interface {
	exprNode()
}

// Module is the root of a lowered program.
type Module struct {
	Body []Stmt
}

// FunctionDef is a def with untyped parameters.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (*FunctionDef) stmtNode() {}

// Return wraps the lowered return value.
type Return struct {
	Value Expr
}

func (*Return) stmtNode() {}

// Assign is a single-name assignment with store semantics.
type Assign struct {
	Target string
	Value  Expr
}

func (*Assign) stmtNode() {}

// If is a conditional. Orelse is always non-nil after lowering; an empty
// Orelse renders as no else clause.
type If struct {
	Cond   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (*If) stmtNode() {}

// While loops while the condition is truthy. There is no counted loop in the
// target tree; source for loops lower to While.
type While struct {
	Cond Expr
	Body []Stmt
}

func (*While) stmtNode() {}

// ExprStmt is an expression evaluated in statement position.
type ExprStmt struct {
	X Expr
}

func (*ExprStmt) stmtNode() {}

// Op is the closed set of binary operators the target tree can carry.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// BinOp is a binary expression.
type BinOp struct {
	Left  Expr
	Op    Op
	Right Expr
}

func (*BinOp) exprNode() {}

// Call is a call expression.
type Call struct {
	Func string
	Args []Expr
}

func (*Call) exprNode() {}

// Name is a load of a named variable.
type Name struct {
	ID string
}

func (*Name) exprNode() {}

// Num is an integer literal.
type Num struct {
	Value int
}

func (*Num) exprNode() {}
