package curve

import "math"

// The five models below share a common structure: with t = k*(x-alpha), each
// value function is a monotone map of t onto an S-shaped range centered so
// that t = 0 yields 0.5. Each Gradient applies the chain rule to the residual
// target 1 - value, giving
//
//	d(1-v)/dk     = -(x-alpha) * dv/dt
//	d(1-v)/dalpha = +k * dv/dt
//
// with dv/dt expressed in a form that saturates rather than overflows for
// large |t|.

// LogisticCurve implements the logistic model: 1 / (1 + e^(-k(x-alpha)))
type LogisticCurve struct{}

var _ Curve = LogisticCurve{}

// Type returns the model type.
func (LogisticCurve) Type() Type { return Logistic }

// Value evaluates the logistic model. For large |k(x-alpha)| the exponential
// saturates to +Inf or 0 and the result converges to 0 or 1 without overflow.
func (LogisticCurve) Value(k, alpha, x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*(x-alpha)))
}

// Gradient returns the partials of 1 - Value. With s = Value, dv/dt = s*(1-s).
func (c LogisticCurve) Gradient(k, alpha, x float64) (dk, dalpha float64) {
	s := c.Value(k, alpha, x)
	dvdt := s * (1.0 - s)

	return -(x - alpha) * dvdt, k * dvdt
}

// TanhCurve implements the hyperbolic tangent model: (tanh(k(x-alpha)) + 1) / 2
type TanhCurve struct{}

var _ Curve = TanhCurve{}

// Type returns the model type.
func (TanhCurve) Type() Type { return Tanh }

// Value evaluates the hyperbolic tangent model.
func (TanhCurve) Value(k, alpha, x float64) float64 {
	return (math.Tanh(k*(x-alpha)) + 1.0) / 2.0
}

// Gradient returns the partials of 1 - Value. dv/dt = (1 - tanh²t) / 2.
func (TanhCurve) Gradient(k, alpha, x float64) (dk, dalpha float64) {
	th := math.Tanh(k * (x - alpha))
	dvdt := (1.0 - th*th) / 2.0

	return -(x - alpha) * dvdt, k * dvdt
}

// AtanCurve implements the arctangent model: (atan(k(x-alpha)) + 1) / 2
//
// Note the affine shift follows the reference form: the asymptotes are
// (1±π/2)/2, so extreme values slightly exceed [0, 1]. Within the fitted
// distance range the anchors keep the curve near 1 at zero and near 0 at the
// sentinel.
type AtanCurve struct{}

var _ Curve = AtanCurve{}

// Type returns the model type.
func (AtanCurve) Type() Type { return Atan }

// Value evaluates the arctangent model.
func (AtanCurve) Value(k, alpha, x float64) float64 {
	return (math.Atan(k*(x-alpha)) + 1.0) / 2.0
}

// Gradient returns the partials of 1 - Value. dv/dt = 1 / (2*(1+t²)).
func (AtanCurve) Gradient(k, alpha, x float64) (dk, dalpha float64) {
	t := k * (x - alpha)
	dvdt := 1.0 / (2.0 * (1.0 + t*t))

	return -(x - alpha) * dvdt, k * dvdt
}

// GudermannianCurve implements the Gudermannian model:
// (2*atan(tanh(k(x-alpha)/2)) + 1) / 2
//
// Like AtanCurve this keeps the reference's affine shift, with asymptotes
// (1±π/2)/2. The half-argument coefficient is the real number 0.5 in every
// term of both Value and Gradient.
type GudermannianCurve struct{}

var _ Curve = GudermannianCurve{}

// Type returns the model type.
func (GudermannianCurve) Type() Type { return Gudermannian }

// Value evaluates the Gudermannian model.
func (GudermannianCurve) Value(k, alpha, x float64) float64 {
	return (2.0*math.Atan(math.Tanh(0.5*k*(x-alpha))) + 1.0) / 2.0
}

// Gradient returns the partials of 1 - Value.
//
// With u = tanh(t/2), dv/dt = sech²(t/2) / (2*(1+u²)); sech²(t/2) is computed
// as 1-u² so the expression saturates to 0 for large |t| instead of evaluating
// cosh at an overflowing argument.
func (GudermannianCurve) Gradient(k, alpha, x float64) (dk, dalpha float64) {
	u := math.Tanh(0.5 * k * (x - alpha))
	sech2 := 1.0 - u*u
	dvdt := sech2 / (2.0 * (1.0 + u*u))

	return -(x - alpha) * dvdt, k * dvdt
}

// AlgebraicCurve implements the algebraic (rational) model:
// (k(x-alpha)/sqrt(1+(k(x-alpha))²) + 1) / 2
type AlgebraicCurve struct{}

var _ Curve = AlgebraicCurve{}

// Type returns the model type.
func (AlgebraicCurve) Type() Type { return Algebraic }

// Value evaluates the algebraic model. t/sqrt(1+t²) converges to ±1 for large
// |t| without overflow.
func (AlgebraicCurve) Value(k, alpha, x float64) float64 {
	t := k * (x - alpha)

	return (t/math.Sqrt(1.0+t*t) + 1.0) / 2.0
}

// Gradient returns the partials of 1 - Value. dv/dt = (1+t²)^(-3/2) / 2.
func (AlgebraicCurve) Gradient(k, alpha, x float64) (dk, dalpha float64) {
	t := k * (x - alpha)
	d := 1.0 + t*t
	dvdt := 1.0 / (2.0 * d * math.Sqrt(d))

	return -(x - alpha) * dvdt, k * dvdt
}
