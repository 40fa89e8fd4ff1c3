package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Summary holds the per-symbol statistics of one data file.
type Summary struct {
	Path    string
	Symbols map[string]Stats
}

// Summarize reads one generated CSV file and computes the median and
// population standard deviation of the value column per symbol. The
// summary always covers the full symbol universe; a symbol absent from
// the file reports zero statistics. Rows with symbols outside the
// universe are ignored.
func Summarize(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(head) != 2 || head[0] != header[0] || head[1] != header[1] {
		return nil, fmt.Errorf("%s: unexpected header %v, want %v", path, head, header)
	}

	values := make(map[string][]float64, len(Symbols))
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad value %q: %w", path, rec[1], err)
		}
		values[rec[0]] = append(values[rec[0]], v)
	}

	sum := &Summary{Path: path, Symbols: make(map[string]Stats, len(Symbols))}
	for _, sym := range Symbols {
		sum.Symbols[sym] = statsOf(values[sym])
	}
	return sum, nil
}
