package compiler_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/ngo/pkg/compiler"
	"github.com/agenthands/ngo/pkg/compiler/lexer"
	"github.com/agenthands/ngo/pkg/compiler/parser"
	"github.com/agenthands/ngo/pkg/compiler/python"
)

func TestTranspileReferenceProgram(t *testing.T) {
	src := "func add(a int, b int) int { if a { return a + b } else { return b } }"
	want := "def add(a, b):\n" +
		"    if a:\n" +
		"        return a + b\n" +
		"    else:\n" +
		"        return b\n"

	got, err := compiler.Transpile(src, compiler.Options{})
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if got != want {
		t.Errorf("Transpile() =\n%q\nwant\n%q", got, want)
	}
}

func TestTranspilePrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "for renders as while",
			src:  "func countdown(n int) { for n { n = n - 1 } }",
			want: "def countdown(n):\n    while n:\n        n = n - 1\n",
		},
		{
			name: "declare-assign renders as assignment",
			src:  "func double(x) { y := x * 2 return y }",
			want: "def double(x):\n    y = x * 2\n    return y\n",
		},
		{
			name: "call statement",
			src:  "func main() { greet(1, 2) }",
			want: "def main():\n    greet(1, 2)\n",
		},
		{
			name: "precedence survives the round trip",
			src:  "func f(a, b, c) { return a + b * c - a / c }",
			want: "def f(a, b, c):\n    return a + b * c - a / c\n",
		},
		{
			name: "zero parameters and empty body",
			src:  "func noop() { }",
			want: "def noop():\n    pass\n",
		},
		{
			name: "nested control flow",
			src:  "func f(n) { for n { if n { n = n - 1 } else { n = 0 } } return n }",
			want: "def f(n):\n" +
				"    while n:\n" +
				"        if n:\n" +
				"            n = n - 1\n" +
				"        else:\n" +
				"            n = 0\n" +
				"    return n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compiler.Transpile(tt.src, compiler.Options{})
			if err != nil {
				t.Fatalf("Transpile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Transpile() =\n%q\nwant\n%q", got, tt.want)
			}
			if err := python.Verify(got); err != nil {
				t.Errorf("output is not valid Python: %v", err)
			}
		})
	}
}

func TestTranspileWithCheck(t *testing.T) {
	src := "func add(a, b) { return a + b }"
	got, err := compiler.Transpile(src, compiler.Options{Check: true})
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.HasPrefix(got, "def add(a, b):") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestTranspileIndentOption(t *testing.T) {
	src := "func f(x) { return x }"
	got, err := compiler.Transpile(src, compiler.Options{Indent: 2})
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	want := "def f(x):\n  return x\n"
	if got != want {
		t.Errorf("Transpile() = %q, want %q", got, want)
	}
}

func TestTranspileErrors(t *testing.T) {
	t.Run("lex error", func(t *testing.T) {
		out, err := compiler.Transpile("func f() { x = 1 ? }", compiler.Options{})
		if err == nil {
			t.Fatal("expected error, got none")
		}
		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			t.Fatalf("expected *lexer.Error, got %T: %v", err, err)
		}
		if out != "" {
			t.Errorf("expected no output on error, got %q", out)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		out, err := compiler.Transpile("func f( { }", compiler.Options{})
		if err == nil {
			t.Fatal("expected error, got none")
		}
		var parseErr *parser.Error
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *parser.Error, got %T: %v", err, err)
		}
		if out != "" {
			t.Errorf("expected no output on error, got %q", out)
		}
	})
}

func FuzzTranspile(f *testing.F) {
	f.Add("func add(a int, b int) int { if a { return a + b } else { return b } }")
	f.Add("func f() { }")
	f.Add("func f(n) { for n { n = n - 1 } }")
	f.Add("func g(x) { y := x * 2 return g(y) + 1 }")
	f.Add("func f( { }")
	f.Add("x = $")

	f.Fuzz(func(t *testing.T, src string) {
		// The pipeline must never panic and never return partial output
		// alongside an error. Rendered output is not always valid Python:
		// source identifiers may collide with Python keywords, and no stage
		// performs name checking.
		out, err := compiler.Transpile(src, compiler.Options{})
		if err != nil && out != "" {
			t.Errorf("error %v with non-empty output %q", err, out)
		}
	})
}

func BenchmarkTranspile(b *testing.B) {
	src := "func add(a int, b int) int { if a { return a + b } else { return b } }"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := compiler.Transpile(src, compiler.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
