package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthands/ngo/pkg/compiler/ast"
	"github.com/agenthands/ngo/pkg/compiler/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse an nGo source file and print its syntax tree",
	Long: `Parse an nGo source file and print the syntax tree, one node per
line, children indented under their parent. Reads stdin when the file
argument is "-" or absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	fn, err := parser.Parse(src)
	if err != nil {
		return err
	}

	var b strings.Builder
	writeNode(&b, "Function", fmt.Sprintf("%s params=%v", fn.Name, fn.Params), 0)
	writeStmts(&b, fn.Body, 1)
	fmt.Print(b.String())
	return nil
}

func writeStmts(b *strings.Builder, stmts []ast.Stmt, depth int) {
	for _, s := range stmts {
		writeStmt(b, s, depth)
	}
}

func writeStmt(b *strings.Builder, s ast.Stmt, depth int) {
	switch n := s.(type) {
	case *ast.Return:
		writeNode(b, "Return", n.Value.String(), depth)
	case *ast.Assign:
		writeNode(b, "Assign", fmt.Sprintf("%s = %s", n.Name, n.Value), depth)
	case *ast.If:
		writeNode(b, "If", n.Cond.String(), depth)
		writeStmts(b, n.Then, depth+1)
		if n.Otherwise != nil {
			writeNode(b, "Else", "", depth)
			writeStmts(b, n.Otherwise, depth+1)
		}
	case *ast.For:
		writeNode(b, "For", n.Cond.String(), depth)
		writeStmts(b, n.Body, depth+1)
	case *ast.ExprStmt:
		writeNode(b, "Expr", n.X.String(), depth)
	default:
		writeNode(b, fmt.Sprintf("%T", s), "", depth)
	}
}

func writeNode(b *strings.Builder, kind, detail string, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(kindStyle.Render(kind))
	if detail != "" {
		b.WriteByte(' ')
		b.WriteString(detail)
	}
	b.WriteByte('\n')
}
