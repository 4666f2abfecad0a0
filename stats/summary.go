// Package stats provides descriptive and inferential statistics over numeric
// sequences, built on the elementary primitives in package maths.
//
// All functions promote their input internally to float64 and return scalar
// results as float64 regardless of the input element type. Variance-like
// functions take a degrees-of-freedom offset ddof: 0 yields the population
// statistic, 1 the sample-corrected one.
//
// Structural preconditions (length, size agreement, value domains) are
// checked eagerly and reported through the pkg/errors taxonomy before any
// computation proceeds; lower-level failures propagate unchanged. Degenerate
// correlation denominators return NaN rather than an error.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/statkit/maths"
	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// Mean returns the arithmetic average of x.
func Mean[T maths.Real](x []T) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("Mean", 1, 0)
	}
	sum := floats.Sum(maths.Float64s(x))
	return sum / float64(len(x)), nil
}

// HMean returns the harmonic mean n / sum(1/x_i). A zero element is rejected
// through Reciprocal.
func HMean[T maths.Real](x []T) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("HMean", 1, 0)
	}
	rec, err := maths.Reciprocal(x)
	if err != nil {
		return 0, err
	}
	return float64(len(x)) / floats.Sum(rec), nil
}

// GMean returns the geometric mean (prod x_i)^(1/n). Every element must be
// strictly positive.
func GMean[T maths.Real](x []T) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("GMean", 1, 0)
	}
	if !maths.IsPositive(x) {
		return 0, errors.NewInvalidValueError("GMean", "input must contain strictly positive values", x)
	}
	prod, err := maths.Prod(x)
	if err != nil {
		return 0, err
	}
	return math.Pow(prod, 1/float64(len(x))), nil
}

// PMean returns the power mean (sum(x_i^p) / n)^(1/p). Every element must be
// strictly positive. The exponent p is not validated; p = 0 follows IEEE
// Pow semantics.
func PMean[T maths.Real](x []T, p float64) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("PMean", 1, 0)
	}
	if !maths.IsPositive(x) {
		return 0, errors.NewInvalidValueError("PMean", "input must contain strictly positive values", x)
	}
	powered := maths.Power(x, p)
	return math.Pow(floats.Sum(powered)/float64(len(x)), 1/p), nil
}

// Var returns the variance sum((x_i - mean)^2) / (n - ddof).
func Var[T maths.Real](x []T, ddof int) (float64, error) {
	if len(x) <= 1 {
		return 0, errors.NewInsufficientDataError("Var", 2, len(x))
	}
	if len(x)-ddof == 0 {
		return 0, errors.NewDegenerateDivisionError("Var", "size minus degrees of freedom is 0")
	}

	centered, err := Center(x)
	if err != nil {
		return 0, err
	}
	sxx := floats.Dot(centered, centered)
	return sxx / float64(len(x)-ddof), nil
}

// Std returns the standard deviation sqrt(Var(x, ddof)).
func Std[T maths.Real](x []T, ddof int) (float64, error) {
	v, err := Var(x, ddof)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// HStd returns the harmonic standard deviation 1 / Std(1/x, ddof).
func HStd[T maths.Real](x []T, ddof int) (float64, error) {
	rec, err := maths.Reciprocal(x)
	if err != nil {
		return 0, err
	}
	s, err := Std(rec, ddof)
	if err != nil {
		return 0, err
	}
	return 1 / s, nil
}

// GStd returns the geometric standard deviation exp(Std(log(x), ddof)).
func GStd[T maths.Real](x []T, ddof int) (float64, error) {
	logs, err := maths.Log(x)
	if err != nil {
		return 0, err
	}
	s, err := Std(logs, ddof)
	if err != nil {
		return 0, err
	}
	return math.Exp(s), nil
}

// Skewness returns sum((x_i - mean)^3) * n^0.5 / (sum((x_i - mean)^2))^1.5.
func Skewness[T maths.Real](x []T) (float64, error) {
	if len(x) <= 1 {
		return 0, errors.NewInsufficientDataError("Skewness", 2, len(x))
	}

	centered, err := Center(x)
	if err != nil {
		return 0, err
	}
	var m2, m3 float64
	for _, v := range centered {
		m2 += v * v
		m3 += v * v * v
	}
	return m3 * math.Sqrt(float64(len(x))) / math.Pow(m2, 1.5), nil
}

// Kurtosis returns sum((x_i - mean)^4) * n / (sum((x_i - mean)^2))^2.
// The value is not normalized; no -3 offset is applied.
func Kurtosis[T maths.Real](x []T) (float64, error) {
	if len(x) <= 1 {
		return 0, errors.NewInsufficientDataError("Kurtosis", 2, len(x))
	}

	centered, err := Center(x)
	if err != nil {
		return 0, err
	}
	var m2, m4 float64
	for _, v := range centered {
		sq := v * v
		m2 += sq
		m4 += sq * sq
	}
	return m4 * float64(len(x)) / (m2 * m2), nil
}
