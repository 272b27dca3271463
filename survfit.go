// Package survfit fits empirical survival curves of per-category distance
// samples to a fixed family of 2-parameter sigmoid models and selects the
// best-fitting model per category by weighted residual error.
//
// Given the sorted distances observed for each category, survfit builds an
// anchored ECDF-complement dataset, fits five candidate models (logistic,
// hyperbolic tangent, arctangent, Gudermannian, algebraic) by weighted
// nonlinear least squares with analytic gradients, and keeps the winner per
// category. All categories are fitted concurrently; failures stay isolated
// per category.
//
// # Basic Usage
//
//	table, err := survfit.AnalyzeAll(map[string][]float64{
//	    "iris-setosa":    {0.12, 0.31, 0.42, 0.55, 0.71},
//	    "iris-virginica": {0.25, 0.33, 0.60, 0.81, 0.95},
//	})
//	if err != nil {
//	    // at least one category failed; table keeps the successes
//	    log.Println(err)
//	}
//
//	best, _ := table.Get("iris-setosa")
//	fmt.Println(best)                 // e.g. Fit{Curve: logistic, ...}
//	fmt.Println(best.Survival(0.5))   // fitted survival probability at 0.5
//
// # Snapshots
//
// Fitted tables can be persisted as compact binary snapshots with optional
// compression and reloaded without refitting:
//
//	data, _ := survfit.EncodeTable(table, blob.WithCompression(format.CompressionZstd))
//	restored, _ := survfit.DecodeTable(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fit and blob
// packages. For fine-grained control (custom initial guess, solver criteria,
// per-model diagnostics) use those packages directly.
package survfit

import (
	"github.com/survlab/survfit/blob"
	"github.com/survlab/survfit/fit"
	"github.com/survlab/survfit/internal/hash"
)

// CategoryID computes the stable 64-bit ID (xxHash64) of a category label, as
// stored in snapshot blobs.
func CategoryID(label string) uint64 {
	return hash.CategoryID(label)
}

// Analyze fits the whole model family to one category's sorted distances and
// returns the selection (winner plus all candidates).
func Analyze(distances []float64, opts ...fit.Option) (*fit.Selection, error) {
	return fit.AnalyzeDistances(distances, opts...)
}

// AnalyzeAll fits every category concurrently and returns the shared category
// fit table. On partial failure the table holds every successful category and
// the error aggregates the failing ones.
func AnalyzeAll(samples map[string][]float64, opts ...fit.Option) (*fit.Table, error) {
	return fit.AnalyzeAll(samples, opts...)
}

// EncodeTable serializes a fit table into a binary snapshot.
func EncodeTable(table *fit.Table, opts ...blob.Option) ([]byte, error) {
	encoder, err := blob.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(table)
}

// DecodeTable restores a fit table from a binary snapshot.
func DecodeTable(data []byte) (*fit.Table, error) {
	return blob.Decode(data)
}
