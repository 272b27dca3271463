package curve

import (
	"fmt"
	"strings"

	"github.com/survlab/survfit/errs"
)

// Type identifies a model in the fixed sigmoid family.
type Type int

const (
	// Logistic represents the logistic model: 1 / (1 + e^(-k(x-alpha)))
	Logistic Type = iota
	// Tanh represents the hyperbolic tangent model: (tanh(k(x-alpha)) + 1) / 2
	Tanh
	// Atan represents the arctangent model: (atan(k(x-alpha)) + 1) / 2
	Atan
	// Gudermannian represents the Gudermannian model: (2*atan(tanh(k(x-alpha)/2)) + 1) / 2
	Gudermannian
	// Algebraic represents the algebraic model: (k(x-alpha)/sqrt(1+(k(x-alpha))^2) + 1) / 2
	Algebraic
)

// typeNames maps Type to their string representations.
var typeNames = map[Type]string{
	Logistic:     "logistic",
	Tanh:         "tanh",
	Atan:         "atan",
	Gudermannian: "gudermannian",
	Algebraic:    "algebraic",
}

// String returns the string representation of the curve type.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// typeFromString maps string names to Type.
var typeFromString = map[string]Type{
	"logistic":     Logistic,
	"tanh":         Tanh,
	"atan":         Atan,
	"gudermannian": Gudermannian,
	"algebraic":    Algebraic,
}

// TypeFromString returns the Type for a given string name (case-insensitive).
// Returns Type(-1) for unknown names.
func TypeFromString(name string) Type {
	if t, exists := typeFromString[strings.ToLower(name)]; exists {
		return t
	}

	return Type(-1) // Invalid Type
}

// AllTypes returns the model family in its fixed enumeration order.
//
// The order is significant: the model selector fits candidates in this order
// and breaks weighted-RMS-error ties in favor of the earlier entry.
func AllTypes() []Type {
	return []Type{Logistic, Tanh, Atan, Gudermannian, Algebraic}
}

// Curve is a single model of the family: a value function and the analytic
// gradient of its residual target.
//
// Implementations are stateless and safe for concurrent use; the parameters
// (k, alpha) are passed on every call rather than stored, since the solver
// re-evaluates the model at changing parameter vectors.
type Curve interface {
	// Type returns the model type.
	Type() Type
	// Value evaluates the model at distance x with steepness k and
	// inflection point alpha.
	Value(k, alpha, x float64) float64
	// Gradient returns the analytic partial derivatives of the residual
	// target 1 - Value(k, alpha, x) with respect to k and alpha.
	Gradient(k, alpha, x float64) (dk, dalpha float64)
}

// New returns the Curve implementation for the given type.
//
// Returns errs.ErrUnknownCurve for types outside the fixed family.
func New(t Type) (Curve, error) {
	switch t {
	case Logistic:
		return LogisticCurve{}, nil
	case Tanh:
		return TanhCurve{}, nil
	case Atan:
		return AtanCurve{}, nil
	case Gudermannian:
		return GudermannianCurve{}, nil
	case Algebraic:
		return AlgebraicCurve{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCurve, int(t))
	}
}

// MustNew is like New but panics on unknown types. It is intended for the
// fixed enumeration where the type is known at compile time.
func MustNew(t Type) Curve {
	c, err := New(t)
	if err != nil {
		panic(err)
	}

	return c
}
