package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSource drops a small nGo program into a temp dir and returns its path.
func writeSource(t *testing.T, dir string) string {
	t.Helper()
	src := filepath.Join(dir, "add.ngo")
	if err := os.WriteFile(src, []byte("func add(a, b) { return a + b }"), 0o644); err != nil {
		t.Fatal(err)
	}
	return src
}

func resetTranspileFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		transpileIndent = 4
		transpileCheck = false
		transpileOut = ""
	})
}

func TestTranspileRejectsNonPositiveIndent(t *testing.T) {
	src := writeSource(t, t.TempDir())
	resetTranspileFlags(t)

	for _, bad := range []string{"0", "-2"} {
		if err := transpileCmd.Flags().Set("indent", bad); err != nil {
			t.Fatal(err)
		}
		err := runTranspile(transpileCmd, []string{src})
		if err == nil {
			t.Fatalf("--indent %s: expected error, got none", bad)
		}
		if !strings.Contains(err.Error(), "must be positive") {
			t.Errorf("--indent %s: error = %v, want positive-indent message", bad, err)
		}
	}
}

func TestTranspileIndentFlagApplied(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir)
	out := filepath.Join(dir, "add.py")
	resetTranspileFlags(t)

	if err := transpileCmd.Flags().Set("indent", "2"); err != nil {
		t.Fatal(err)
	}
	if err := transpileCmd.Flags().Set("out", out); err != nil {
		t.Fatal(err)
	}
	if err := runTranspile(transpileCmd, []string{src}); err != nil {
		t.Fatalf("runTranspile() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "def add(a, b):\n  return a + b\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
