package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthands/ngo/pkg/compiler/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of an nGo source file",
	Long: `Scan an nGo source file and print one line per token: kind, text,
byte offset, and line. Reads stdin when the file argument is "-" or
absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%d tokens", len(toks))))
	for _, tok := range toks {
		fmt.Printf("%s %-12q %s\n",
			kindStyle.Render(fmt.Sprintf("%-10s", tok.Kind)),
			tok.Text,
			mutedStyle.Render(fmt.Sprintf("offset=%d line=%d", tok.Offset, tok.Line)))
	}
	return nil
}
