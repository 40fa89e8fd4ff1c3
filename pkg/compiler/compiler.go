// Package compiler wires the translation pipeline: source text is scanned,
// parsed, lowered to the target tree, and rendered as Python source. Each
// stage is a pure transformation consumed exactly once; the first failing
// stage aborts the run with its own error and no output is produced.
package compiler

import (
	"github.com/agenthands/ngo/pkg/compiler/emitter"
	"github.com/agenthands/ngo/pkg/compiler/parser"
	"github.com/agenthands/ngo/pkg/compiler/python"
)

// Options controls rendering and verification. The zero value is usable.
type Options struct {
	// Indent is the number of spaces per nesting level in the rendered
	// output; 0 means python.DefaultIndent.
	Indent int
	// Check parses the rendered output with gpython and fails the run if
	// it is not valid Python.
	Check bool
}

// Transpile translates one nGo function definition into Python source.
func Transpile(src string, opts Options) (string, error) {
	fn, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	mod, err := emitter.Lower(fn)
	if err != nil {
		return "", err
	}
	r := python.Renderer{Indent: opts.Indent}
	out := r.Render(mod)
	if opts.Check {
		if err := python.Verify(out); err != nil {
			return "", err
		}
	}
	return out, nil
}
