package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/statkit/maths"
	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// Center returns x - mean(x) element-wise as float64.
func Center[T maths.Real](x []T) ([]float64, error) {
	m, err := Mean(x)
	if err != nil {
		return nil, err
	}
	out := maths.Float64s(x)
	floats.AddConst(-m, out)
	return out, nil
}

// ZScore returns the standard scores (x - mean(x)) / std(x, ddof).
func ZScore[T maths.Real](x []T, ddof int) ([]float64, error) {
	size := len(x)
	if size <= 1 {
		return nil, errors.NewInsufficientDataError("ZScore", 2, size)
	}
	if size-ddof == 0 {
		return nil, errors.NewDegenerateDivisionError("ZScore", "size minus degrees of freedom is 0")
	}

	centered, err := Center(x)
	if err != nil {
		return nil, err
	}
	sxx := floats.Dot(centered, centered)
	std := math.Sqrt(sxx / float64(size-ddof))

	floats.Scale(1/std, centered)
	return centered, nil
}

// GZScore returns the geometric standard scores ZScore(log(x), ddof).
func GZScore[T maths.Real](x []T, ddof int) ([]float64, error) {
	logs, err := maths.Log(x)
	if err != nil {
		return nil, err
	}
	return ZScore(logs, ddof)
}
