package fit

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// AnalyzeAll fits survival curves for every category concurrently and
// collects the winners into a shared Table.
//
// One goroutine is dispatched per category with its own copy of the input
// distances, so no two workers alias the same buffer and callers may reuse
// the input map freely once AnalyzeAll returns. Workers run Prepare and the
// full model selection independently and write their winning fit into the
// table under its lock; only the write is serialized, never the solve.
//
// AnalyzeAll waits for every worker to finish. Per-category failures do not
// abort sibling categories: each failure is logged with its category label,
// recorded, and joined into the returned error, while the table keeps a valid
// entry for every category that succeeded. Callers therefore always receive
// the partial table, plus a non-nil error whenever at least one category
// failed (use errors.Is against the errs sentinels to classify failures).
func AnalyzeAll(samples map[string][]float64, opts ...Option) (*Table, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	table := NewTable()

	var wg sync.WaitGroup
	var failMu sync.Mutex
	var failures []error

	for category, distances := range samples {
		wg.Add(1)
		go func(category string, distances []float64) {
			defer wg.Done()

			sel, err := analyzeCategory(distances, cfg)
			if err != nil {
				cfg.logger.Error("curve fitting failed",
					"category", category,
					"error", err,
				)
				failMu.Lock()
				failures = append(failures, fmt.Errorf("category %q: %w", category, err))
				failMu.Unlock()

				return
			}

			table.Set(category, sel.Best)

			cfg.logger.Debug("curve fitting completed",
				"category", category,
				"best", sel.Best.String(),
				"candidates", candidateSummaries(sel),
			)
		}(category, slices.Clone(distances))
	}

	wg.Wait()

	if len(failures) > 0 {
		return table, errors.Join(failures...)
	}

	return table, nil
}

// analyzeCategory is one worker's unit of work: dataset preparation followed
// by full model selection.
func analyzeCategory(distances []float64, cfg config) (*Selection, error) {
	ds, err := Prepare(distances)
	if err != nil {
		return nil, err
	}

	return analyze(ds, cfg)
}

// candidateSummaries renders all candidate fits for the diagnostic log line.
func candidateSummaries(sel *Selection) []string {
	out := make([]string, len(sel.All))
	for i, r := range sel.All {
		out[i] = r.String()
	}

	return out
}
