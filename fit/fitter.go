package fit

import (
	"fmt"

	"github.com/survlab/survfit/curve"
	"github.com/survlab/survfit/internal/lm"
)

// FitCurve fits a single model of the family to a prepared dataset by
// weighted nonlinear least squares.
//
// The solve minimizes Σ w_i*(1 - value(k, alpha, x_i) - y_i)² starting from
// the configured initial guess. Solver failures (insufficient data, zero
// weight mass, degenerate Jacobian, non-finite model output) propagate
// wrapped with the model name; they are never absorbed or retried here.
func FitCurve(t curve.Type, ds *Dataset, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return fitCurve(t, ds, cfg)
}

// fitCurve is the option-parsed core shared by FitCurve and Analyze.
func fitCurve(t curve.Type, ds *Dataset, cfg config) (*Result, error) {
	c, err := curve.New(t)
	if err != nil {
		return nil, err
	}

	problem := lm.Problem{
		X: ds.X,
		Y: ds.Y,
		W: ds.W,
		Eval: func(k, alpha, x float64) float64 {
			return 1.0 - c.Value(k, alpha, x)
		},
		Grad: c.Gradient,
	}

	report, err := lm.Solve(problem, cfg.initial.K, cfg.initial.Alpha, lm.Config{
		Epsilon:       cfg.epsilon,
		MaxIterations: cfg.maxIterations,
	})
	if err != nil {
		return nil, fmt.Errorf("fitting %s curve: %w", t, err)
	}

	return &Result{
		Type:      t,
		Params:    Params{K: report.K, Alpha: report.Alpha},
		WRMSError: report.WRMSError,
		c:         c,
	}, nil
}
