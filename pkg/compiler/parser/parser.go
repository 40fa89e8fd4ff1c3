// Package parser builds an ast.Function from a token stream by recursive
// descent with one-token lookahead and no backtracking.
//
// Grammar:
//
//	function  := "func" IDENT "(" params ")" [ "int" ] block
//	params    := { IDENT [ "int" ] [ "," ] }
//	block     := "{" { statement } "}"
//	statement := "return" expr
//	           | "if" expr block [ "else" block ]
//	           | "for" expr block
//	           | IDENT ( "=" | ":=" ) expr
//	           | expr as a statement, when it begins with a call
//	expr      := term { ("+" | "-") term }
//	term      := factor { ("*" | "/") factor }
//	factor    := NUMBER | IDENT | IDENT "(" args ")"
//	args      := [ expr { "," expr } ]
//
// The optional "int" annotations are recognized and discarded; types never
// reach the tree. The comma between parameters is a separator in name only
// and may be omitted or trailed; call arguments require it. Parsing is
// all-or-nothing: the first mismatch aborts with an *Error and no partial
// tree is returned.
package parser

import (
	"fmt"
	"strconv"

	"github.com/agenthands/ngo/pkg/compiler/ast"
	"github.com/agenthands/ngo/pkg/compiler/lexer"
)

// Error reports the first point of mismatch between the grammar and the
// token stream: what the active production expected and the token found.
type Error struct {
	Expected string
	Got      lexer.Token
}

func (e *Error) Error() string {
	if e.Got.Kind == lexer.KindEOF {
		return fmt.Sprintf("expected %s, got end of input at line %d", e.Expected, e.Got.Line)
	}
	return fmt.Sprintf("expected %s, got %q at line %d", e.Expected, e.Got.Text, e.Got.Line)
}

// Parser consumes a scanner's token stream exactly once.
type Parser struct {
	scanner *lexer.Scanner
	curTok  lexer.Token
	peekTok lexer.Token
	primed  bool
}

// New creates a parser over the given scanner. The scanner is consumed by
// the parse and cannot be reused.
func New(s *lexer.Scanner) *Parser {
	return &Parser{scanner: s}
}

// Parse is a convenience that scans and parses src in one call.
func Parse(src string) (*ast.Function, error) {
	return New(lexer.NewScanner(src)).ParseFunction()
}

// ParseFunction parses one function definition followed by end of input.
func (p *Parser) ParseFunction() (*ast.Function, error) {
	if !p.primed {
		// Read two tokens, so curTok and peekTok are both set.
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		p.primed = true
	}

	if _, err := p.expect(lexer.KindFunc); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.KindIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindLParen); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindRParen); err != nil {
		return nil, err
	}
	// Optional return type annotation, discarded.
	if p.curTok.Kind == lexer.KindInt {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if p.curTok.Kind != lexer.KindEOF {
		return nil, &Error{Expected: "end of input", Got: p.curTok}
	}

	return &ast.Function{Name: name.Text, Params: params, Body: body}, nil
}

// parseParams parses IDENT [int] pairs until the closing parenthesis, which
// is left for the caller. The int annotations are eaten and dropped; a
// separating comma after each pair is optional.
func (p *Parser) parseParams() ([]string, error) {
	var params []string
	for p.curTok.Kind != lexer.KindRParen {
		name, err := p.expect(lexer.KindIdent)
		if err != nil {
			return nil, err
		}
		params = append(params, name.Text)
		if p.curTok.Kind == lexer.KindInt {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if p.curTok.Kind == lexer.KindComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	return params, nil
}

func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect(lexer.KindLBrace); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.curTok.Kind != lexer.KindRBrace && p.curTok.Kind != lexer.KindEOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.KindRBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.curTok.Kind {
	case lexer.KindReturn:
		if err := p.advance(); err != nil { // skip return
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Value: value}, nil

	case lexer.KindIf:
		if err := p.advance(); err != nil { // skip if
			return nil, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		then, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		var otherwise []ast.Stmt
		if p.curTok.Kind == lexer.KindElse {
			if err := p.advance(); err != nil { // skip else
				return nil, err
			}
			otherwise, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
			if otherwise == nil {
				otherwise = []ast.Stmt{}
			}
		}
		return &ast.If{Cond: cond, Then: then, Otherwise: otherwise}, nil

	case lexer.KindFor:
		if err := p.advance(); err != nil { // skip for
			return nil, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.For{Cond: cond, Body: body}, nil

	case lexer.KindIdent:
		// One token of lookahead decides between a call in statement
		// position and an assignment.
		if p.peekTok.Kind == lexer.KindLParen {
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.ExprStmt{X: x}, nil
		}
		name := p.curTok
		if err := p.advance(); err != nil { // skip identifier
			return nil, err
		}
		if p.curTok.Kind != lexer.KindAssign && p.curTok.Kind != lexer.KindDeclare {
			return nil, &Error{Expected: `"=" or ":="`, Got: p.curTok}
		}
		if err := p.advance(); err != nil { // skip = or :=
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Name: name.Text, Value: value}, nil

	default:
		return nil, &Error{Expected: "statement", Got: p.curTok}
	}
}

// parseExpr handles left-associative addition and subtraction over terms.
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curTok.Kind == lexer.KindPlus || p.curTok.Kind == lexer.KindMinus {
		op := p.curTok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseTerm handles left-associative multiplication and division, binding
// tighter than parseExpr.
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curTok.Kind == lexer.KindStar || p.curTok.Kind == lexer.KindSlash {
		op := p.curTok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseFactor handles integer literals, bare identifiers, and calls.
func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.curTok.Kind {
	case lexer.KindNumber:
		tok := p.curTok
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := strconv.Atoi(tok.Text)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q at line %d: %w", tok.Text, tok.Line, err)
		}
		return &ast.Num{Value: value}, nil

	case lexer.KindIdent:
		name := p.curTok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curTok.Kind != lexer.KindLParen {
			return &ast.Var{Name: name.Text}, nil
		}
		if err := p.advance(); err != nil { // skip (
			return nil, err
		}
		var args []ast.Expr
		if p.curTok.Kind != lexer.KindRParen {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			for p.curTok.Kind == lexer.KindComma {
				if err := p.advance(); err != nil { // skip ,
					return nil, err
				}
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
		}
		if _, err := p.expect(lexer.KindRParen); err != nil {
			return nil, err
		}
		return &ast.Call{Name: name.Text, Args: args}, nil

	default:
		return nil, &Error{Expected: "expression", Got: p.curTok}
	}
}

// expect consumes and returns the current token if it has the given kind,
// and fails with an *Error otherwise.
func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if p.curTok.Kind != kind {
		return lexer.Token{}, &Error{Expected: kind.String(), Got: p.curTok}
	}
	tok := p.curTok
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func (p *Parser) advance() error {
	p.curTok = p.peekTok
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.peekTok = tok
	return nil
}
