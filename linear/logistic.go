package linear

import (
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/statkit/core/model"
	"github.com/YuminosukeSato/statkit/maths"
	"github.com/YuminosukeSato/statkit/pkg/errors"
	"github.com/YuminosukeSato/statkit/pkg/log"
	"github.com/YuminosukeSato/statkit/stats"
)

const logisticModelName = "SimpleLogisticRegression"

// Default hyperparameters for SimpleLogisticRegression.
const (
	DefaultLearningRate       = 0.001
	DefaultGradientThreshold  = 0.01
	DefaultIterationThreshold = 100
)

// gradientEpsilon floors the denominator of the relative-gradient
// convergence check so a parameter at exactly zero cannot divide by zero.
const gradientEpsilon = 1e-12

// SimpleLogisticRegression is a binary classifier fitted by batch gradient
// descent on the log-loss gradient. Targets must be exactly {0, 1}.
//
// Fit must not be called concurrently on the same instance; see
// model.BaseEstimator for the full concurrency contract.
type SimpleLogisticRegression[T maths.Real] struct {
	model.BaseEstimator

	learningRate       float64
	gradientThreshold  float64
	iterationThreshold int

	coeff     float64
	intercept float64
	nIter     int
}

// NewSimpleLogisticRegression creates an unfitted logistic regression model
// with the default hyperparameters, which the options may override.
// Hyperparameters are validated on Fit, not here.
func NewSimpleLogisticRegression[T maths.Real](opts ...Option[T]) *SimpleLogisticRegression[T] {
	lr := &SimpleLogisticRegression[T]{
		learningRate:       DefaultLearningRate,
		gradientThreshold:  DefaultGradientThreshold,
		iterationThreshold: DefaultIterationThreshold,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Coeff returns the fitted coefficient, or 0 when the model is unfitted.
func (lr *SimpleLogisticRegression[T]) Coeff() float64 {
	return lr.coeff
}

// Intercept returns the fitted intercept, or 0 when the model is unfitted.
func (lr *SimpleLogisticRegression[T]) Intercept() float64 {
	return lr.intercept
}

// NIter returns the number of gradient-descent iterations the last
// successful Fit performed.
func (lr *SimpleLogisticRegression[T]) NIter() int {
	return lr.nIter
}

// Fit runs batch gradient descent until the relative change of both
// gradients drops to the gradient threshold or the iteration threshold is
// reached, whichever comes first. Hitting the iteration cap without
// convergence emits a ConvergenceWarning through errors.Warn.
//
// A failed Fit leaves the model unfitted.
func (lr *SimpleLogisticRegression[T]) Fit(x []T, y []int) error {
	lr.Reset()

	if lr.learningRate <= 0 {
		return errors.NewHyperparameterError("learning_rate", "must be positive", lr.learningRate)
	}
	if lr.gradientThreshold <= 0 || lr.gradientThreshold >= 1 {
		return errors.NewHyperparameterError("gradient_threshold", "must be a percentage in (0, 1)", lr.gradientThreshold)
	}
	if lr.iterationThreshold <= 0 {
		return errors.NewHyperparameterError("iteration_threshold", "must be positive", lr.iterationThreshold)
	}

	size := len(x)
	if size != len(y) {
		return errors.NewSizeMismatchError("SimpleLogisticRegression.Fit", size, len(y))
	}
	if size < 2 {
		return errors.NewInsufficientDataError("SimpleLogisticRegression.Fit", 2, size)
	}
	ySet, err := maths.Set(y, maths.DefaultEpsilon)
	if err != nil {
		return err
	}
	if len(ySet) != 2 {
		return errors.NewInvalidValueError("SimpleLogisticRegression.Fit", "targets must contain two classes of values", ySet)
	}
	for _, class := range ySet {
		if class != 0 && class != 1 {
			return errors.NewInvalidValueError("SimpleLogisticRegression.Fit", "targets must contain binary values, 0 or 1", class)
		}
	}

	sizeInv := 1 / float64(size)
	xf := maths.Float64s(x)
	yf := maths.Float64s(y)
	residual := make([]float64, size)

	lr.coeff, lr.intercept = 0, 0
	iteration := 0
	for {
		// Residuals against the thresholded labels, not the raw sigmoid
		// probabilities.
		predicted := lr.decide(x)
		for i, label := range predicted {
			residual[i] = float64(label) - yf[i]
		}

		dCoeff := sizeInv * floats.Dot(xf, residual)
		dIntercept := sizeInv * floats.Sum(residual)
		lr.coeff -= lr.learningRate * dCoeff
		lr.intercept -= lr.learningRate * dIntercept
		iteration++

		if err := errors.CheckNumericalStability("gradient_update", []float64{lr.coeff, lr.intercept}, iteration); err != nil {
			return err
		}

		if relChange(dCoeff, lr.coeff) <= lr.gradientThreshold &&
			relChange(dIntercept, lr.intercept) <= lr.gradientThreshold {
			break
		}
		if iteration >= lr.iterationThreshold {
			errors.Warn(errors.NewConvergenceWarning(logisticModelName, iteration, ""))
			break
		}
	}

	lr.nIter = iteration
	lr.SetFitted()
	log.GetLogger().Debug("fit complete",
		log.ModelNameKey, logisticModelName,
		log.OperationKey, "fit",
		log.SamplesKey, size,
		log.IterationsKey, iteration,
		log.LearningRateKey, lr.learningRate,
		log.CoeffKey, lr.coeff,
		log.InterceptKey, lr.intercept,
	)
	return nil
}

// Predict applies the linear map and sigmoid, then thresholds at 0.5 into
// {0, 1} labels.
func (lr *SimpleLogisticRegression[T]) Predict(x []T) ([]int, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError(logisticModelName, "Predict")
	}
	return lr.decide(x), nil
}

// decide is Predict without the fitted-state gate, for use inside Fit.
func (lr *SimpleLogisticRegression[T]) decide(x []T) []int {
	probs := maths.Sigmoid(maths.Linear(x, lr.coeff, lr.intercept))
	labels := make([]int, len(probs))
	for i, p := range probs {
		if p >= 0.5 {
			labels[i] = 1
		}
	}
	return labels
}

// Score returns the accuracy of Predict(x) against y.
func (lr *SimpleLogisticRegression[T]) Score(x []T, y []int) (float64, error) {
	predicted, err := lr.Predict(x)
	if err != nil {
		return 0, err
	}
	return stats.AccuracyScore(y, predicted)
}

// Export writes the fitted parameters as a versioned JSON envelope.
func (lr *SimpleLogisticRegression[T]) Export(w io.Writer) error {
	if !lr.IsFitted() {
		return errors.NewNotFittedError(logisticModelName, "Export")
	}
	return model.SaveParams(w, logisticModelName, logisticParams{
		Coeff:     lr.coeff,
		Intercept: lr.intercept,
		NIter:     lr.nIter,
	})
}

// Import reads parameters written by Export and marks the model fitted.
func (lr *SimpleLogisticRegression[T]) Import(r io.Reader) error {
	var params logisticParams
	if err := model.LoadParams(r, logisticModelName, &params); err != nil {
		return err
	}
	lr.coeff = params.Coeff
	lr.intercept = params.Intercept
	lr.nIter = params.NIter
	lr.SetFitted()
	return nil
}

type logisticParams struct {
	Coeff     float64 `json:"coeff"`
	Intercept float64 `json:"intercept"`
	NIter     int     `json:"n_iter"`
}

// relChange is the relative magnitude of a gradient step against the
// updated parameter, with the denominator floored at gradientEpsilon.
func relChange(grad, param float64) float64 {
	return math.Abs(grad) / math.Max(math.Abs(param), gradientEpsilon)
}
