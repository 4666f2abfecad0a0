package stats

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/statkit/maths"
	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// NormalConsistency rescales a median absolute deviation into a consistent
// estimator of the standard deviation under a normal distribution.
const NormalConsistency = 1.4826

// Median returns the middle value of a sorted copy of x, averaging the two
// middle values when the length is even.
func Median[T maths.Real](x []T) (float64, error) {
	size := len(x)
	if size == 0 {
		return 0, errors.NewInsufficientDataError("Median", 1, 0)
	}

	sorted := maths.Float64s(x)
	sort.Float64s(sorted)

	if size%2 == 0 {
		return (sorted[size/2-1] + sorted[size/2]) / 2, nil
	}
	return sorted[size/2], nil
}

// MedianAbsDeviation returns median(|x - median(x)|). When rescale is true
// the result is multiplied by NormalConsistency.
func MedianAbsDeviation[T maths.Real](x []T, rescale bool) (float64, error) {
	med, err := Median(x)
	if err != nil {
		return 0, err
	}

	deviations := make([]float64, len(x))
	for i, v := range x {
		deviations[i] = math.Abs(float64(v) - med)
	}

	mad, err := Median(deviations)
	if err != nil {
		return 0, err
	}
	if rescale {
		mad *= NormalConsistency
	}
	return mad, nil
}
