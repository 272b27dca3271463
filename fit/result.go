package fit

import (
	"fmt"

	"github.com/survlab/survfit/curve"
)

// Params is the parameter pair shared by every model in the family.
type Params struct {
	// K is the steepness of the transition.
	K float64
	// Alpha is the inflection point, where the model value crosses 0.5.
	Alpha float64
}

// DefaultInitialGuess is the initial parameter pair used for every model and
// every category unless overridden with WithInitialGuess. It is a tunable
// default, not a per-category estimate; all five models start the solve from
// the same point.
var DefaultInitialGuess = Params{K: 0.367, Alpha: 0.45}

// NewResult reconstructs a Result from a persisted (type, params, error)
// triple, e.g. when decoding a snapshot blob. Returns errs.ErrUnknownCurve
// for types outside the fixed family.
func NewResult(t curve.Type, params Params, wrmsError float64) (*Result, error) {
	c, err := curve.New(t)
	if err != nil {
		return nil, err
	}

	return &Result{
		Type:      t,
		Params:    params,
		WRMSError: wrmsError,
		c:         c,
	}, nil
}

// Result is one fitted model for one category. It is immutable after the
// fitter creates it.
type Result struct {
	// Type is the fitted model.
	Type curve.Type
	// Params holds the fitted (k, alpha).
	Params Params
	// WRMSError is the weighted root-mean-square error at convergence.
	WRMSError float64

	c curve.Curve
}

// Survival returns the fitted survival probability at distance x, i.e. the
// residual target 1 - value(k, alpha, x) of the fitted model.
func (r *Result) Survival(x float64) float64 {
	return 1.0 - r.c.Value(r.Params.K, r.Params.Alpha, x)
}

// String returns a human-readable summary of the fit.
func (r *Result) String() string {
	return fmt.Sprintf("Fit{Curve: %s, k: %.4f, alpha: %.4f, wrms: %.6g}",
		r.Type, r.Params.K, r.Params.Alpha, r.WRMSError)
}

// Selection is the outcome of fitting the whole model family to one dataset.
type Selection struct {
	// Best is the fit with the smallest weighted RMS error. Ties go to the
	// model appearing first in curve.AllTypes order.
	Best *Result
	// All holds every candidate fit in curve.AllTypes order, for diagnostic
	// reporting and model comparison.
	All []*Result
}

// String returns a human-readable summary of the selection.
func (s *Selection) String() string {
	if s.Best == nil {
		return "Selection{Best: nil}"
	}

	return fmt.Sprintf("Selection{Best: %s, Candidates: %d}", s.Best, len(s.All))
}
