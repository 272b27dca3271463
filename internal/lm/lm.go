// Package lm implements a weighted nonlinear least-squares solver for
// 2-parameter models using the Levenberg-Marquardt method with an analytic
// Jacobian.
//
// The solver minimizes
//
//	S(k, alpha) = Σ w_i * (f(k, alpha, x_i) - y_i)²
//
// over the parameter pair (k, alpha), where f is the residual-target function
// supplied by the caller. Because every model in the family has exactly two
// free parameters, the damped normal equations reduce to a 2x2 system solved
// in closed form each iteration; no general matrix machinery is needed.
//
// Termination is explicit rather than inherited from a library default: the
// solve stops when the relative cost reduction of an accepted step falls below
// Config.Epsilon, when the step norm becomes negligible relative to the
// parameter magnitude, or after Config.MaxIterations iterations.
package lm

import (
	"fmt"
	"math"

	"github.com/survlab/survfit/errs"
)

const (
	// initialDamping is the starting Levenberg-Marquardt damping factor.
	initialDamping = 1e-3
	// minDamping and maxDamping bound the damping adaptation. Escalating past
	// maxDamping without an acceptable step means the normal equations are
	// effectively singular.
	minDamping = 1e-12
	maxDamping = 1e12
	// dampingDown and dampingUp are the adaptation factors applied after an
	// accepted and a rejected step respectively.
	dampingDown = 0.1
	dampingUp   = 10.0

	numParams = 2
)

// Func evaluates the fitted function at parameters (k, alpha) and abscissa x.
type Func func(k, alpha, x float64) float64

// Grad returns the partial derivatives of Func with respect to k and alpha.
type Grad func(k, alpha, x float64) (dk, dalpha float64)

// Problem bundles the weighted dataset with the model callbacks.
//
// X, Y and W must have equal lengths. Weights must be non-negative; points
// with zero weight contribute nothing to the objective.
type Problem struct {
	X, Y, W []float64
	Eval    Func
	Grad    Grad
}

// Config holds the solver stopping criteria.
type Config struct {
	// Epsilon is the relative cost-reduction threshold for convergence.
	Epsilon float64
	// MaxIterations caps the number of Levenberg-Marquardt iterations.
	MaxIterations int
}

// DefaultConfig returns the documented default stopping criteria.
func DefaultConfig() Config {
	return Config{
		Epsilon:       1e-12,
		MaxIterations: 200,
	}
}

// Report describes a converged solve.
type Report struct {
	// K and Alpha are the fitted parameters.
	K, Alpha float64
	// WRMSError is sqrt(Σ w_i*r_i² / Σ w_i) at the fitted parameters: the
	// square root of the weighted mean of squared residuals.
	WRMSError float64
	// Iterations is the number of iterations performed.
	Iterations int
}

// Solve runs the Levenberg-Marquardt minimization starting from (k0, alpha0).
//
// Returns an error if the dataset has fewer points than free parameters, has
// no weight mass, if the model produces a non-finite value or gradient, or if
// the damped normal equations remain singular after damping escalation.
func Solve(p Problem, k0, alpha0 float64, cfg Config) (Report, error) {
	n := len(p.X)
	if len(p.Y) != n || len(p.W) != n {
		return Report{}, fmt.Errorf("%w: mismatched lengths x=%d y=%d w=%d",
			errs.ErrInsufficientData, n, len(p.Y), len(p.W))
	}
	if n < numParams {
		return Report{}, fmt.Errorf("%w: %d points, %d parameters",
			errs.ErrInsufficientData, n, numParams)
	}

	sumW := 0.0
	for _, w := range p.W {
		sumW += w
	}
	if sumW <= 0 {
		return Report{}, errs.ErrZeroWeight
	}

	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultConfig().Epsilon
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}

	k, alpha := k0, alpha0
	cost, err := weightedCost(p, k, alpha)
	if err != nil {
		return Report{}, err
	}

	damping := initialDamping
	iters := 0
	converged := false

	for iters < cfg.MaxIterations && !converged {
		iters++

		// Accumulate the normal equations J'WJ and gradient J'Wr.
		var a11, a12, a22 float64 // J'WJ, symmetric
		var g1, g2 float64        // J'Wr
		for i := range p.X {
			w := p.W[i]
			if w == 0 {
				continue
			}
			r := p.Eval(k, alpha, p.X[i]) - p.Y[i]
			jk, ja := p.Grad(k, alpha, p.X[i])
			if !isFinite(r) || !isFinite(jk) || !isFinite(ja) {
				return Report{}, fmt.Errorf("%w at x=%g k=%g alpha=%g",
					errs.ErrNonFinite, p.X[i], k, alpha)
			}
			a11 += w * jk * jk
			a12 += w * jk * ja
			a22 += w * ja * ja
			g1 += w * jk * r
			g2 += w * ja * r
		}

		// Gradient already negligible: converged at a stationary point.
		if math.Hypot(g1, g2) <= cfg.Epsilon*(1.0+cost) {
			break
		}

		// Try damped steps, escalating damping until one reduces the cost.
		accepted := false
		solvable := false
		for damping <= maxDamping {
			d11 := a11 * (1.0 + damping)
			d22 := a22 * (1.0 + damping)
			det := d11*d22 - a12*a12
			if det == 0 || !isFinite(det) {
				damping *= dampingUp
				continue
			}

			// Solve (J'WJ + damping*diag) step = -J'Wr for the 2x2 system.
			stepK := (-g1*d22 + g2*a12) / det
			stepA := (-g2*d11 + g1*a12) / det
			if !isFinite(stepK) || !isFinite(stepA) {
				damping *= dampingUp
				continue
			}
			solvable = true

			trialK, trialA := k+stepK, alpha+stepA
			trialCost, costErr := weightedCost(p, trialK, trialA)
			if costErr != nil || trialCost >= cost {
				damping *= dampingUp
				continue
			}

			reduction := cost - trialCost
			stepNorm := math.Hypot(stepK, stepA)
			k, alpha, cost = trialK, trialA, trialCost
			damping = math.Max(damping*dampingDown, minDamping)
			accepted = true

			if reduction <= cfg.Epsilon*cost || stepNorm <= cfg.Epsilon*(1.0+math.Hypot(k, alpha)) {
				converged = true
			}

			break
		}

		if !accepted {
			if !solvable {
				// The normal equations stayed singular through the whole
				// damping sweep: the Jacobian is degenerate.
				return Report{}, errs.ErrDegenerateSystem
			}

			// Steps were solvable but none reduced the cost even at maximal
			// damping, where steps are vanishingly small: local minimum.
			converged = true
		}
	}

	return Report{
		K:          k,
		Alpha:      alpha,
		WRMSError:  math.Sqrt(cost / sumW),
		Iterations: iters,
	}, nil
}

// weightedCost computes S = Σ w_i*(f(k,alpha,x_i) - y_i)².
func weightedCost(p Problem, k, alpha float64) (float64, error) {
	s := 0.0
	for i := range p.X {
		w := p.W[i]
		if w == 0 {
			continue
		}
		r := p.Eval(k, alpha, p.X[i]) - p.Y[i]
		if !isFinite(r) {
			return 0, fmt.Errorf("%w at x=%g k=%g alpha=%g", errs.ErrNonFinite, p.X[i], k, alpha)
		}
		s += w * r * r
	}

	return s, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
