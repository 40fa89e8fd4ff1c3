// Package emitter lowers the source tree into the target tree. Lowering is a
// structural recursive dispatch with one case per source node variant; the
// variant set is closed by the ast package's marker methods, and the operator
// set is checked at runtime because operators travel as strings.
package emitter

import (
	"fmt"

	"github.com/agenthands/ngo/pkg/compiler/ast"
	"github.com/agenthands/ngo/pkg/compiler/python"
)

// LoweringError reports an operator or node variant the emitter does not
// recognize. Unreachable from a valid parse, but handled explicitly.
type LoweringError struct {
	Unsupported string
}

func (e *LoweringError) Error() string {
	return "cannot lower " + e.Unsupported
}

// Lower converts a parsed function into a target module holding one function
// definition. Mapping is 1:1 per variant; for loops become while loops, and
// an absent else branch becomes an empty, never missing, alternate body.
func Lower(fn *ast.Function) (*python.Module, error) {
	body, err := lowerStmts(fn.Body)
	if err != nil {
		return nil, err
	}
	def := &python.FunctionDef{
		Name:   fn.Name,
		Params: fn.Params,
		Body:   body,
	}
	return &python.Module{Body: []python.Stmt{def}}, nil
}

// lowerStmts lowers a statement list in original order. The result is always
// non-nil so that emptiness is a present, renderable fact.
func lowerStmts(stmts []ast.Stmt) ([]python.Stmt, error) {
	out := make([]python.Stmt, 0, len(stmts))
	for _, s := range stmts {
		lowered, err := lowerStmt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, lowered)
	}
	return out, nil
}

func lowerStmt(s ast.Stmt) (python.Stmt, error) {
	switch s := s.(type) {
	case *ast.Return:
		value, err := lowerExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return &python.Return{Value: value}, nil

	case *ast.Assign:
		value, err := lowerExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return &python.Assign{Target: s.Name, Value: value}, nil

	case *ast.If:
		cond, err := lowerExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		body, err := lowerStmts(s.Then)
		if err != nil {
			return nil, err
		}
		orelse, err := lowerStmts(s.Otherwise)
		if err != nil {
			return nil, err
		}
		return &python.If{Cond: cond, Body: body, Orelse: orelse}, nil

	case *ast.For:
		cond, err := lowerExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		body, err := lowerStmts(s.Body)
		if err != nil {
			return nil, err
		}
		return &python.While{Cond: cond, Body: body}, nil

	case *ast.ExprStmt:
		x, err := lowerExpr(s.X)
		if err != nil {
			return nil, err
		}
		return &python.ExprStmt{X: x}, nil

	default:
		return nil, &LoweringError{Unsupported: fmt.Sprintf("statement %T", s)}
	}
}

func lowerExpr(e ast.Expr) (python.Expr, error) {
	switch e := e.(type) {
	case *ast.BinaryOp:
		op, err := opFor(e.Op)
		if err != nil {
			return nil, err
		}
		left, err := lowerExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := lowerExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return &python.BinOp{Left: left, Op: op, Right: right}, nil

	case *ast.Call:
		args := make([]python.Expr, 0, len(e.Args))
		for _, a := range e.Args {
			arg, err := lowerExpr(a)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return &python.Call{Func: e.Name, Args: args}, nil

	case *ast.Var:
		return &python.Name{ID: e.Name}, nil

	case *ast.Num:
		return &python.Num{Value: e.Value}, nil

	default:
		return nil, &LoweringError{Unsupported: fmt.Sprintf("expression %T", e)}
	}
}

// opFor maps the source operator to the closed target set. Anything outside
// + - * / fails, never silently defaults.
func opFor(op string) (python.Op, error) {
	switch op {
	case "+":
		return python.OpAdd, nil
	case "-":
		return python.OpSub, nil
	case "*":
		return python.OpMul, nil
	case "/":
		return python.OpDiv, nil
	default:
		return 0, &LoweringError{Unsupported: fmt.Sprintf("operator %q", op)}
	}
}
