// Package model provides the shared estimator state machine, estimator
// interfaces, and fitted-parameter persistence.
package model

// EstimatorState represents the training state of a model.
type EstimatorState int

const (
	// NotFitted is the state of a model before a successful Fit.
	NotFitted EstimatorState = iota
	// Fitted is the state of a model after a successful Fit.
	Fitted
)

// BaseEstimator is the base embedded by every estimator. It replaces
// sentinel parameter values with an explicit fitted state, so Predict and
// Score can refuse to run on an unfitted model.
//
// BaseEstimator performs no locking. Fitting mutates estimator parameters,
// so concurrent calls to Fit on the same instance must be serialized by the
// caller; Predict, Score and getters may run concurrently with each other on
// a stable instance, but never concurrently with an in-progress Fit.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has seen a successful Fit.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
