package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/ngo/pkg/compiler"
)

var (
	transpileOut    string
	transpileCheck  bool
	transpileIndent int
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [file]",
	Short: "Translate an nGo source file to Python",
	Long: `Translate an nGo source file to Python and print the result.

Reads stdin when the file argument is "-" or absent.

Examples:
  ngo transpile add.ngo
  ngo transpile add.ngo --out add.py
  ngo transpile --check --indent 2 add.ngo
  cat add.ngo | ngo transpile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranspile,
}

func init() {
	rootCmd.AddCommand(transpileCmd)

	transpileCmd.Flags().StringVarP(&transpileOut, "out", "o", "", "output file (default stdout)")
	transpileCmd.Flags().BoolVar(&transpileCheck, "check", false, "verify the output with an embedded Python parser")
	transpileCmd.Flags().IntVar(&transpileIndent, "indent", 4, "spaces per indentation level")
}

func runTranspile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := compiler.Options{
		Indent: cfg.Transpile.Indent,
		Check:  cfg.Transpile.Check,
	}
	if cmd.Flags().Changed("indent") {
		opts.Indent = transpileIndent
	}
	if cmd.Flags().Changed("check") {
		opts.Check = transpileCheck
	}
	if opts.Indent < 1 {
		return fmt.Errorf("--indent must be positive, got %d", opts.Indent)
	}

	src, err := readSource(args)
	if err != nil {
		return err
	}

	out, err := compiler.Transpile(src, opts)
	if err != nil {
		return err
	}

	if transpileOut != "" {
		if err := os.WriteFile(transpileOut, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Println(okStyle.Render("wrote " + transpileOut))
		return nil
	}
	fmt.Print(out)
	return nil
}
