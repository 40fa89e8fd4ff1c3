package python

import (
	"fmt"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// Verify parses src as a Python module and reports any syntax error. It is
// used to check rendered output before it is handed to the caller.
func Verify(src string) error {
	mod, err := parser.Parse(strings.NewReader(src), "<render>", py.ExecMode)
	if err != nil {
		return fmt.Errorf("python parse error: %w", err)
	}
	if _, ok := mod.(*ast.Module); !ok {
		return fmt.Errorf("expected *ast.Module, got %T", mod)
	}
	return nil
}
