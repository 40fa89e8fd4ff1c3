package python

import (
	"strconv"
	"strings"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// Renderer prints a target tree as Python source. The zero value renders
// with DefaultIndent.
type Renderer struct {
	Indent int
}

// Render prints the module with default settings.
func Render(m *Module) string {
	var r Renderer
	return r.Render(m)
}

// Render prints the module as Python source, ending with a newline. Empty
// statement lists render as pass so the output is always syntactically
// complete.
func (r *Renderer) Render(m *Module) string {
	var b strings.Builder
	r.writeStmts(&b, m.Body, 0)
	return b.String()
}

func (r *Renderer) indentStep() int {
	if r.Indent > 0 {
		return r.Indent
	}
	return DefaultIndent
}

func (r *Renderer) writeStmts(b *strings.Builder, stmts []Stmt, depth int) {
	if len(stmts) == 0 {
		r.pad(b, depth)
		b.WriteString("pass\n")
		return
	}
	for _, s := range stmts {
		r.writeStmt(b, s, depth)
	}
}

// writeStmt covers every target statement; the statement set is closed by
// the package-private marker method.
func (r *Renderer) writeStmt(b *strings.Builder, s Stmt, depth int) {
	switch s := s.(type) {
	case *FunctionDef:
		r.pad(b, depth)
		b.WriteString("def ")
		b.WriteString(s.Name)
		b.WriteString("(")
		b.WriteString(strings.Join(s.Params, ", "))
		b.WriteString("):\n")
		r.writeStmts(b, s.Body, depth+1)

	case *Return:
		r.pad(b, depth)
		b.WriteString("return ")
		b.WriteString(exprString(s.Value, 0, false))
		b.WriteString("\n")

	case *Assign:
		r.pad(b, depth)
		b.WriteString(s.Target)
		b.WriteString(" = ")
		b.WriteString(exprString(s.Value, 0, false))
		b.WriteString("\n")

	case *If:
		r.pad(b, depth)
		b.WriteString("if ")
		b.WriteString(exprString(s.Cond, 0, false))
		b.WriteString(":\n")
		r.writeStmts(b, s.Body, depth+1)
		if len(s.Orelse) > 0 {
			r.pad(b, depth)
			b.WriteString("else:\n")
			r.writeStmts(b, s.Orelse, depth+1)
		}

	case *While:
		r.pad(b, depth)
		b.WriteString("while ")
		b.WriteString(exprString(s.Cond, 0, false))
		b.WriteString(":\n")
		r.writeStmts(b, s.Body, depth+1)

	case *ExprStmt:
		r.pad(b, depth)
		b.WriteString(exprString(s.X, 0, false))
		b.WriteString("\n")
	}
}

func (r *Renderer) pad(b *strings.Builder, depth int) {
	for i := 0; i < depth*r.indentStep(); i++ {
		b.WriteByte(' ')
	}
}

// precedence levels for parenthesization; higher binds tighter.
func precedence(op Op) int {
	switch op {
	case OpMul, OpDiv:
		return 2
	default:
		return 1
	}
}

// exprString renders an expression, inserting the minimal parentheses: a
// lower-precedence child is wrapped, and so is an equal-precedence child on
// the right of a left-associative operator.
func exprString(e Expr, parentPrec int, rightSide bool) string {
	switch e := e.(type) {
	case *Num:
		return strconv.Itoa(e.Value)
	case *Name:
		return e.ID
	case *Call:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = exprString(a, 0, false)
		}
		return e.Func + "(" + strings.Join(args, ", ") + ")"
	case *BinOp:
		own := precedence(e.Op)
		s := exprString(e.Left, own, false) + " " + e.Op.String() + " " + exprString(e.Right, own, true)
		if own < parentPrec || (own == parentPrec && rightSide) {
			return "(" + s + ")"
		}
		return s
	default:
		return ""
	}
}
