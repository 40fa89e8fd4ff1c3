// Package cmd holds the ngo command tree.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/ngo/pkg/core/config"
	"github.com/agenthands/ngo/pkg/core/logging"
	"github.com/agenthands/ngo/pkg/dataset"
)

var (
	cfgFile string
	verbose bool

	log = logging.New("ngo")
)

var rootCmd = &cobra.Command{
	Use:   "ngo",
	Short: "nGo to Python source-to-source compiler",
	Long: `ngo translates nGo, a small typed toy language with Go-flavored
syntax, into plain Python source.

Commands:
  transpile  - translate an nGo source file to Python
  tokens     - dump the token stream of an nGo source file
  ast        - parse an nGo source file and print its syntax tree
  dataset    - generate and aggregate the sample CSV workload
  version    - show build information`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logging.LevelDebug)
			dataset.Log.SetLevel(logging.LevelDebug)
		}
	},
}

// Execute runs the command tree and prints the failure, if any, in the
// shared error style.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml, or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig returns the defaults, or the merged file config when
// --config was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded", "path", cfgFile)
	return cfg, nil
}

// readSource reads the single source argument. No argument or "-"
// means stdin.
func readSource(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
