package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Report is the combined result of one aggregation run.
type Report struct {
	// RunID tags the run so reports from repeated invocations can be
	// told apart in logs.
	RunID string
	// Files holds the per-file summaries in input order, regardless of
	// completion order.
	Files []*Summary
	// Combined holds, per symbol, the median and population standard
	// deviation of the per-file medians. One sample point per file, so
	// a report over reports, never a rescan of raw values.
	Combined map[string]Stats
}

// Aggregate summarizes every file on a fixed pool of workers goroutines
// and combines the results into a Report. The first file error aborts
// the run. Cancelling ctx stops dispatch and collection; files already
// in flight finish and are discarded.
func Aggregate(ctx context.Context, files []string, workers int) (*Report, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to aggregate")
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	runID := uuid.New().String()
	Log.Debug("aggregation started", "run_id", runID, "files", len(files), "workers", workers)

	type result struct {
		index   int
		summary *Summary
		err     error
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := range files {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	// results is buffered to capacity so workers never block on send
	// after the collector has returned.
	results := make(chan result, len(files))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sum, err := Summarize(files[i])
				if err == nil {
					Log.Debug("file summarized", "run_id", runID, "path", files[i])
				}
				results <- result{index: i, summary: sum, err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	summaries := make([]*Summary, len(files))
	for seen := 0; seen < len(files); seen++ {
		select {
		case res, ok := <-results:
			if !ok {
				// The pool drained before every file was summarized,
				// which only happens when ctx was canceled.
				return nil, ctx.Err()
			}
			if res.err != nil {
				return nil, res.err
			}
			summaries[res.index] = res.summary
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	medians := make(map[string][]float64, len(Symbols))
	for _, sum := range summaries {
		for _, sym := range Symbols {
			medians[sym] = append(medians[sym], sum.Symbols[sym].Median)
		}
	}
	combined := make(map[string]Stats, len(Symbols))
	for _, sym := range Symbols {
		combined[sym] = statsOf(medians[sym])
	}

	Log.Debug("aggregation finished", "run_id", runID)
	return &Report{RunID: runID, Files: summaries, Combined: combined}, nil
}
