package maths

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// DefaultEpsilon is the absolute tolerance Set uses to treat two values as
// duplicates when no explicit tolerance is given.
const DefaultEpsilon = 1e-6

// IsPositive reports whether every element is strictly greater than zero.
// It is vacuously true for an empty sequence.
func IsPositive[T Real](x []T) bool {
	for _, v := range x {
		if v <= 0 {
			return false
		}
	}
	return true
}

// Prod returns the multiplicative reduction of x with identity 1, promoted
// to float64.
func Prod[T Real](x []T) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("Prod", 1, 0)
	}
	return floats.Prod(Float64s(x)), nil
}

// Absolute returns the element-wise magnitude of x, keeping the element type.
func Absolute[T Real](x []T) []T {
	out := make([]T, len(x))
	for i, v := range x {
		if v < 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}

// Reciprocal returns the element-wise 1/x promoted to float64. Any element
// equal to exact zero is rejected.
func Reciprocal[T Real](x []T) ([]float64, error) {
	for _, v := range x {
		if v == 0 {
			return nil, errors.NewInvalidValueError("Reciprocal", "input must not contain zero", v)
		}
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = 1 / float64(v)
	}
	return out, nil
}

// Linear returns the element-wise a*x + b as float64.
func Linear[T Real](x []T, a, b float64) []float64 {
	out := Float64s(x)
	floats.Scale(a, out)
	floats.AddConst(b, out)
	return out
}

// Power returns the element-wise x^p via floating-point exponentiation.
// Fractional exponents are supported; a negative base with a fractional
// exponent yields NaN per IEEE semantics.
func Power[T Real](x []T, p float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Pow(float64(v), p)
	}
	return out
}

// Log returns the element-wise natural logarithm. Every element must be
// strictly positive.
func Log[T Real](x []T) ([]float64, error) {
	if !IsPositive(x) {
		return nil, errors.NewInvalidValueError("Log", "input must contain strictly positive values", x)
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Log(float64(v))
	}
	return out, nil
}

// Exp returns the element-wise natural exponential.
func Exp[T Real](x []T) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(float64(v))
	}
	return out
}

// Sigmoid returns the element-wise logistic function 1/(1+exp(-x)).
func Sigmoid[T Real](x []T) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = 1 / (1 + math.Exp(-float64(v)))
	}
	return out
}

// Set eliminates near-duplicates from x: the first element is always kept,
// and each later element is appended only when no kept member lies within
// epsilon absolute distance of it. Complexity is O(n*k) for an output of
// size k, which is accepted for the small inputs this is used on.
func Set[T Real](x []T, epsilon float64) ([]T, error) {
	if len(x) == 0 {
		return nil, errors.NewInsufficientDataError("Set", 1, 0)
	}

	out := make([]T, 0, len(x))
	out = append(out, x[0])
	for _, v := range x[1:] {
		found := false
		for _, kept := range out {
			if math.Abs(float64(v)-float64(kept)) <= epsilon {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out, nil
}
