// Package linear provides the two simple supervised estimators: ordinary
// least squares linear regression and gradient-descent logistic regression.
// Both operate on flat numeric sequences of any element type.
package linear

import (
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/statkit/core/model"
	"github.com/YuminosukeSato/statkit/maths"
	"github.com/YuminosukeSato/statkit/pkg/errors"
	"github.com/YuminosukeSato/statkit/pkg/log"
)

const linearModelName = "SimpleLinearRegression"

// SimpleLinearRegression fits y = coeff*x + intercept by ordinary least
// squares in closed form.
//
// Fit must not be called concurrently on the same instance; see
// model.BaseEstimator for the full concurrency contract.
type SimpleLinearRegression[T maths.Real] struct {
	model.BaseEstimator

	coeff     float64
	intercept float64
}

// NewSimpleLinearRegression creates an unfitted linear regression model.
func NewSimpleLinearRegression[T maths.Real]() *SimpleLinearRegression[T] {
	return &SimpleLinearRegression[T]{}
}

// Coeff returns the fitted slope, or 0 when the model is unfitted.
func (lr *SimpleLinearRegression[T]) Coeff() float64 {
	return lr.coeff
}

// Intercept returns the fitted intercept, or 0 when the model is unfitted.
func (lr *SimpleLinearRegression[T]) Intercept() float64 {
	return lr.intercept
}

// Fit computes slope and intercept from the normal equations:
//
//	coeff = (n*Sxy - Sx*Sy) / (n*Sxx - Sx^2)
//
// A denominator of exactly zero (constant x) yields a NaN slope. Both
// parameters are overwritten together; a failed Fit leaves the model
// unfitted.
func (lr *SimpleLinearRegression[T]) Fit(x, y []T) error {
	lr.Reset()

	if len(x) != len(y) {
		return errors.NewSizeMismatchError("SimpleLinearRegression.Fit", len(x), len(y))
	}
	if len(x) < 2 {
		return errors.NewInsufficientDataError("SimpleLinearRegression.Fit", 2, len(x))
	}

	xf := maths.Float64s(x)
	yf := maths.Float64s(y)

	sx := floats.Sum(xf)
	sy := floats.Sum(yf)
	sxx := floats.Dot(xf, xf)
	sxy := floats.Dot(xf, yf)
	size := float64(len(x))

	num := size*sxy - sx*sy
	denom := size*sxx - sx*sx
	if denom != 0 {
		lr.coeff = num / denom
	} else {
		lr.coeff = math.NaN()
	}
	lr.intercept = (sy - lr.coeff*sx) / size

	lr.SetFitted()
	log.GetLogger().Debug("fit complete",
		log.ModelNameKey, linearModelName,
		log.OperationKey, "fit",
		log.SamplesKey, len(x),
		log.CoeffKey, lr.coeff,
		log.InterceptKey, lr.intercept,
	)
	return nil
}

// Predict applies coeff*x + intercept element-wise.
func (lr *SimpleLinearRegression[T]) Predict(x []T) ([]float64, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError(linearModelName, "Predict")
	}
	return maths.Linear(x, lr.coeff, lr.intercept), nil
}

// Score returns the coefficient of determination R^2 = 1 - SSres/SStot of
// the prediction on x against y, with SStot computed from y. A constant y
// (SStot of zero) yields NaN.
func (lr *SimpleLinearRegression[T]) Score(x, y []T) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.NewSizeMismatchError("SimpleLinearRegression.Score", len(x), len(y))
	}
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("SimpleLinearRegression.Score", 1, 0)
	}

	predicted, err := lr.Predict(x)
	if err != nil {
		return 0, err
	}

	yf := maths.Float64s(y)
	var ssres float64
	for i, v := range yf {
		res := v - predicted[i]
		ssres += res * res
	}

	sy := floats.Sum(yf)
	syy := floats.Dot(yf, yf)
	sstot := syy - sy*sy/float64(len(y))
	if sstot == 0 {
		return math.NaN(), nil
	}
	return 1 - ssres/sstot, nil
}

// Export writes the fitted parameters as a versioned JSON envelope.
func (lr *SimpleLinearRegression[T]) Export(w io.Writer) error {
	if !lr.IsFitted() {
		return errors.NewNotFittedError(linearModelName, "Export")
	}
	return model.SaveParams(w, linearModelName, linearParams{
		Coeff:     lr.coeff,
		Intercept: lr.intercept,
	})
}

// Import reads parameters written by Export and marks the model fitted.
func (lr *SimpleLinearRegression[T]) Import(r io.Reader) error {
	var params linearParams
	if err := model.LoadParams(r, linearModelName, &params); err != nil {
		return err
	}
	lr.coeff = params.Coeff
	lr.intercept = params.Intercept
	lr.SetFitted()
	return nil
}

type linearParams struct {
	Coeff     float64 `json:"coeff"`
	Intercept float64 `json:"intercept"`
}
