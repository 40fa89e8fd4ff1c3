package dataset

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Symbols is the fixed symbol universe of generated files. Summaries
// always report exactly these symbols, in this order.
var Symbols = []string{"A", "B", "C", "D"}

var header = []string{"syml", "value"}

// Generate writes files CSV files of rows observations each into dir,
// named data1.csv through dataN.csv, and returns their paths in order.
// Each row pairs a random symbol with a value uniform in [0, 100). A
// zero seed draws one from the clock; any other seed makes the output
// reproducible.
func Generate(dir string, files, rows int, seed int64) ([]string, error) {
	if files < 1 {
		return nil, fmt.Errorf("file count must be positive, got %d", files)
	}
	if rows < 1 {
		return nil, fmt.Errorf("row count must be positive, got %d", rows)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dataset dir: %w", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	paths := make([]string, 0, files)
	for i := 1; i <= files; i++ {
		path := filepath.Join(dir, fmt.Sprintf("data%d.csv", i))
		if err := writeDataFile(path, rows, rng); err != nil {
			return nil, err
		}
		Log.Debug("file generated", "path", path, "rows", rows)
		paths = append(paths, path)
	}
	return paths, nil
}

func writeDataFile(path string, rows int, rng *rand.Rand) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	rec := make([]string, 2)
	for j := 0; j < rows; j++ {
		rec[0] = Symbols[rng.Intn(len(Symbols))]
		rec[1] = strconv.FormatFloat(rng.Float64()*100, 'f', -1, 64)
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
