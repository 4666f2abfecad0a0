package stats

import (
	"github.com/YuminosukeSato/statkit/maths"
	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// AccuracyScore returns the fraction of positions where the true and
// predicted label sequences hold equal values.
func AccuracyScore[T maths.Real](yTrue, yPred []T) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, errors.NewSizeMismatchError("AccuracyScore", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return 0, errors.NewInsufficientDataError("AccuracyScore", 1, 0)
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}
