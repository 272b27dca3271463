// Package curve defines the fixed family of 2-parameter sigmoid models used
// to fit per-category survival curves.
//
// Every model maps a distance x onto a survival-style value through a monotone
// S-shaped transform parameterized by steepness k and inflection point alpha,
// centered so that Value(k, alpha, alpha) == 0.5. The fitted residual target is
// 1 - Value(...), modeling decay from 1 at distance zero toward 0 at large
// distances; Gradient therefore returns the analytic partials of 1 - Value
// with respect to k and alpha. Gradients are closed-form throughout so the
// least-squares solver never needs numerical differentiation.
//
// The family is closed by design: exactly five models, enumerated by Type in
// a fixed order (logistic, hyperbolic tangent, arctangent, Gudermannian,
// algebraic). There is no registration mechanism for user-supplied models.
package curve
