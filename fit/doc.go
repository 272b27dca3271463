// Package fit turns per-category distance samples into fitted survival curves.
//
// The pipeline per category is: Prepare builds an anchored, weighted ECDF
// dataset from sorted distances; Analyze fits every model of the curve family
// to that dataset by weighted nonlinear least squares and selects the one with
// the smallest weighted RMS error; AnalyzeAll runs the whole pipeline for many
// categories concurrently and collects the winners into a shared Table.
//
// # Basic Usage
//
//	ds, err := fit.Prepare([]float64{0.12, 0.31, 0.42, 0.55, 0.71})
//	if err != nil {
//	    return err
//	}
//	sel, err := fit.Analyze(ds)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sel.Best) // winning model, parameters, wrms error
//
// # Batch Usage
//
//	table, err := fit.AnalyzeAll(map[string][]float64{
//	    "iris-setosa":     setosaDistances,
//	    "iris-versicolor": versicolorDistances,
//	})
//	if err != nil {
//	    // err aggregates the failing categories; table still holds every
//	    // category that fitted successfully.
//	}
//
// Failures are per-category: one category's degenerate data never aborts the
// fitting of its siblings.
package fit
