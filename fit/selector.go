package fit

import (
	"fmt"

	"github.com/survlab/survfit/curve"
)

// Analyze fits every model of the family to the dataset and selects the one
// with the smallest weighted RMS error.
//
// All five models are fitted in curve.AllTypes order from the same initial
// guess; no model is warm-started from another's result. Selection keeps a
// strict minimum, so on numerically equal errors the model appearing earlier
// in the enumeration wins. A failure of any single model fails the whole
// analysis: a category either produces a complete set of candidates plus a
// winner, or nothing.
func Analyze(ds *Dataset, opts ...Option) (*Selection, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return analyze(ds, cfg)
}

// AnalyzeDistances prepares a single category's distances and analyzes them
// in one call. This is the per-category unit of work dispatched by AnalyzeAll.
func AnalyzeDistances(distances []float64, opts ...Option) (*Selection, error) {
	ds, err := Prepare(distances)
	if err != nil {
		return nil, err
	}

	return Analyze(ds, opts...)
}

// analyze is the option-parsed core shared by Analyze and AnalyzeAll workers.
func analyze(ds *Dataset, cfg config) (*Selection, error) {
	types := curve.AllTypes()
	all := make([]*Result, 0, len(types))

	for _, t := range types {
		r, err := fitCurve(t, ds, cfg)
		if err != nil {
			return nil, fmt.Errorf("model selection aborted: %w", err)
		}

		all = append(all, r)
	}

	return &Selection{Best: selectBest(all), All: all}, nil
}

// selectBest returns the candidate with the strictly smallest weighted RMS
// error. Candidates must be ordered by the fixed model enumeration; on equal
// errors the earlier candidate wins.
func selectBest(all []*Result) *Result {
	var best *Result
	for _, r := range all {
		if best == nil || r.WRMSError < best.WRMSError {
			best = r
		}
	}

	return best
}
