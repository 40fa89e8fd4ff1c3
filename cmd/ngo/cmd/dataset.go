package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agenthands/ngo/pkg/dataset"
)

var (
	datasetDir     string
	datasetFiles   int
	datasetRows    int
	datasetSeed    int64
	datasetWorkers int
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Generate and aggregate the sample CSV workload",
}

var datasetGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write random sample CSV files",
	Long: `Write data1.csv through dataN.csv into the dataset directory. Each
row pairs a symbol from {A, B, C, D} with a value uniform in [0, 100).
A nonzero --seed makes the output reproducible.`,
	Args: cobra.NoArgs,
	RunE: runDatasetGenerate,
}

var datasetReportCmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Aggregate sample files into one report",
	Long: `Summarize every file on a worker pool and print per-symbol
statistics of the per-file medians. Without arguments the report covers
the data*.csv files in the dataset directory, in numeric order.`,
	RunE: runDatasetReport,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetGenerateCmd)
	datasetCmd.AddCommand(datasetReportCmd)

	datasetGenerateCmd.Flags().StringVar(&datasetDir, "dir", ".", "dataset directory")
	datasetGenerateCmd.Flags().IntVar(&datasetFiles, "files", 5, "number of files")
	datasetGenerateCmd.Flags().IntVar(&datasetRows, "rows", 100, "rows per file")
	datasetGenerateCmd.Flags().Int64Var(&datasetSeed, "seed", 0, "random seed (0 uses the clock)")

	datasetReportCmd.Flags().StringVar(&datasetDir, "dir", ".", "dataset directory")
	datasetReportCmd.Flags().IntVar(&datasetWorkers, "workers", 5, "worker pool size")
}

func runDatasetGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, files, rows := cfg.Dataset.Dir, cfg.Dataset.Files, cfg.Dataset.Rows
	seed := cfg.Dataset.Seed
	if cmd.Flags().Changed("dir") {
		dir = datasetDir
	}
	if cmd.Flags().Changed("files") {
		files = datasetFiles
	}
	if cmd.Flags().Changed("rows") {
		rows = datasetRows
	}
	if cmd.Flags().Changed("seed") {
		seed = datasetSeed
	}

	paths, err := dataset.Generate(dir, files, rows, seed)
	if err != nil {
		return err
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("wrote %d files to %s", len(paths), dir)))
	return nil
}

func runDatasetReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, workers := cfg.Dataset.Dir, cfg.Dataset.Workers
	if cmd.Flags().Changed("dir") {
		dir = datasetDir
	}
	if cmd.Flags().Changed("workers") {
		workers = datasetWorkers
	}

	files := args
	if len(files) == 0 {
		files, err = findDataFiles(dir)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := dataset.Aggregate(ctx, files, workers)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Aggregation report"), mutedStyle.Render("run "+report.RunID))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d files, %d workers", len(report.Files), workers)))
	fmt.Println()
	fmt.Printf("%s %12s %12s\n", kindStyle.Render(fmt.Sprintf("%-6s", "symbol")), "median", "std")
	for _, sym := range dataset.Symbols {
		stats := report.Combined[sym]
		fmt.Printf("%-6s %12.4f %12.4f\n", sym, stats.Median, stats.Std)
	}
	return nil
}

// findDataFiles lists dir's data*.csv files in numeric order, so
// data10.csv sorts after data9.csv rather than after data1.csv.
func findDataFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "data*.csv"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no data*.csv files in %s (run \"ngo dataset generate\" first)", dir)
	}

	num := func(path string) int {
		base := strings.TrimSuffix(filepath.Base(path), ".csv")
		n, err := strconv.Atoi(strings.TrimPrefix(base, "data"))
		if err != nil {
			return -1
		}
		return n
	}
	sort.Slice(files, func(i, j int) bool {
		ni, nj := num(files[i]), num(files[j])
		if ni != nj {
			return ni < nj
		}
		return files[i] < files[j]
	})
	return files, nil
}
