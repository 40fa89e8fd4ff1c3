// Package dataset generates and aggregates the sample CSV workload
// that ships with the toolchain. Generate writes data1.csv through
// dataN.csv, each row a symbol from a fixed four-letter universe paired
// with a value uniform in [0, 100). Summarize reduces one file to
// per-symbol statistics, and Aggregate fans Summarize out over a fixed
// worker pool and combines the results into a single report over the
// per-file medians.
package dataset

import "github.com/agenthands/ngo/pkg/core/logging"

// Log is the package logger. The CLI raises it to debug with --verbose
// to get per-file progress lines.
var Log = logging.New("dataset")
