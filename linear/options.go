package linear

import "github.com/YuminosukeSato/statkit/maths"

// Option configures a SimpleLogisticRegression.
type Option[T maths.Real] func(*SimpleLogisticRegression[T])

// WithLearningRate sets the gradient-descent learning rate. Must be
// positive; validated on Fit.
func WithLearningRate[T maths.Real](rate float64) Option[T] {
	return func(lr *SimpleLogisticRegression[T]) {
		lr.learningRate = rate
	}
}

// WithGradientThreshold sets the relative-change convergence tolerance.
// Must lie in (0, 1); validated on Fit.
func WithGradientThreshold[T maths.Real](threshold float64) Option[T] {
	return func(lr *SimpleLogisticRegression[T]) {
		lr.gradientThreshold = threshold
	}
}

// WithIterationThreshold sets the maximum number of gradient-descent
// iterations. Must be positive; validated on Fit.
func WithIterationThreshold[T maths.Real](n int) Option[T] {
	return func(lr *SimpleLogisticRegression[T]) {
		lr.iterationThreshold = n
	}
}
