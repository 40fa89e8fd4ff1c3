// Package ast defines the syntax tree for nGo source. The tree is built
// bottom-up by the parser and never mutated afterwards; each parent owns its
// children and no node is shared. Type annotations from the source are erased
// before nodes are constructed.
package ast

import (
	"fmt"
	"strconv"
)

// Node represents any node in the syntax tree.
type Node interface {
	String() string
}

// Expr represents an expression that yields a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a standalone unit of execution.
type Stmt interface {
	Node
	stmtNode()
}

// Function is the root node: func NAME ( PARAMS ) [int] { BODY }
type Function struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (f *Function) String() string {
	return fmt.Sprintf("Function(%s, params=%v, body=%v)", f.Name, f.Params, f.Body)
}

// Return: return EXPR
type Return struct {
	Value Expr
}

func (*Return) stmtNode() {}
func (r *Return) String() string {
	return fmt.Sprintf("Return(%s)", r.Value)
}

// Assign: NAME = EXPR or NAME := EXPR. The two forms build the same node;
// the declaration distinction is erased exactly as types are.
type Assign struct {
	Name  string
	Value Expr
}

func (*Assign) stmtNode() {}
func (a *Assign) String() string {
	return fmt.Sprintf("Assign(%s, %s)", a.Name, a.Value)
}

// If: if EXPR { THEN } [else { OTHERWISE }]. Otherwise is nil exactly when
// the source had no else clause.
type If struct {
	Cond      Expr
	Then      []Stmt
	Otherwise []Stmt
}

func (*If) stmtNode() {}
func (i *If) String() string {
	if i.Otherwise != nil {
		return fmt.Sprintf("If(%s, then=%v, else=%v)", i.Cond, i.Then, i.Otherwise)
	}
	return fmt.Sprintf("If(%s, then=%v)", i.Cond, i.Then)
}

// For: for EXPR { BODY } — a condition-only loop, no init or post clause.
type For struct {
	Cond Expr
	Body []Stmt
}

func (*For) stmtNode() {}
func (f *For) String() string {
	return fmt.Sprintf("For(%s, body=%v)", f.Cond, f.Body)
}

// ExprStmt: an expression in statement position, in practice a call.
type ExprStmt struct {
	X Expr
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.X)
}

// BinaryOp: LEFT OP RIGHT with OP one of + - * /.
type BinaryOp struct {
	Left  Expr
	Op    string
	Right Expr
}

func (*BinaryOp) exprNode() {}
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Call: NAME ( ARGS )
type Call struct {
	Name string
	Args []Expr
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	return fmt.Sprintf("Call(%s, args=%v)", c.Name, c.Args)
}

// Var is a read of a named variable.
type Var struct {
	Name string
}

func (*Var) exprNode()        {}
func (v *Var) String() string { return v.Name }

// Num is an integer literal.
type Num struct {
	Value int
}

func (*Num) exprNode()        {}
func (n *Num) String() string { return strconv.Itoa(n.Value) }
