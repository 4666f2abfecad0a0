// Package errors provides the error taxonomy and warning system used across
// statkit. It is inspired by scikit-learn's warning and exception hierarchy
// and carries structured error information suitable for zerolog output.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("statkit-Warning: %v\n", w)
	}
	// zerolog sink, initialized lazily to avoid an import cycle.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// It controls how custom warnings such as ConvergenceWarning are processed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When a zerolog sink is installed it takes priority
// over the plain handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// ConvergenceWarning is raised when an iterative optimizer stops at its
// iteration cap before the convergence criterion is met.
type ConvergenceWarning struct {
	Algorithm  string
	Iterations int
	Message    string
}

func (w *ConvergenceWarning) Error() string {
	if w.Message != "" {
		return fmt.Sprintf("%s failed to converge after %d iterations: %s", w.Algorithm, w.Iterations, w.Message)
	}
	return fmt.Sprintf("%s failed to converge after %d iterations. Consider increasing the iteration threshold or adjusting parameters.", w.Algorithm, w.Iterations)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("algorithm", w.Algorithm).
		Int("iterations", w.Iterations).
		Str("message", w.Message).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning creates a new ConvergenceWarning.
func NewConvergenceWarning(algorithm string, iterations int, message string) *ConvergenceWarning {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations, Message: message}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when Predict or Score is called on a model that
// has not seen a successful Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("statkit: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// SizeMismatchError is returned when two related sequences differ in length.
type SizeMismatchError struct {
	Op       string
	Expected int
	Got      int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("statkit: %s: size mismatch between input sequences. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *SizeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "SizeMismatchError")
}

// NewSizeMismatchError creates a SizeMismatchError with a stack trace attached.
func NewSizeMismatchError(op string, expected, got int) error {
	err := &SizeMismatchError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// InsufficientDataError is returned when a sequence is empty or too short for
// the requested statistic.
type InsufficientDataError struct {
	Op  string
	Min int
	Got int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("statkit: %s: input has not enough values (need at least %d, got %d)", e.Op, e.Min, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("min", e.Min).
		Int("got", e.Got).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError creates an InsufficientDataError with a stack trace
// attached.
func NewInsufficientDataError(op string, min, got int) error {
	err := &InsufficientDataError{Op: op, Min: min, Got: got}
	return errors.WithStack(err)
}

// InvalidValueError is returned when a domain precondition on the input
// values is violated, such as a zero passed to Reciprocal or a non-positive
// value passed to Log.
type InvalidValueError struct {
	Op     string
	Reason string
	Value  interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("statkit: %s: %s (got: %v)", e.Op, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InvalidValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidValueError")
}

// NewInvalidValueError creates an InvalidValueError with a stack trace
// attached.
func NewInvalidValueError(op, reason string, value interface{}) error {
	err := &InvalidValueError{Op: op, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// DegenerateDivisionError is returned when a denominator that is structurally
// required to be nonzero evaluates to zero on otherwise valid inputs. It is
// a numerical degeneracy, not a bad input.
type DegenerateDivisionError struct {
	Op     string
	Detail string
}

func (e *DegenerateDivisionError) Error() string {
	return fmt.Sprintf("statkit: %s: %s", e.Op, e.Detail)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DegenerateDivisionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("detail", e.Detail).
		Str("type", "DegenerateDivisionError")
}

// NewDegenerateDivisionError creates a DegenerateDivisionError with a stack
// trace attached.
func NewDegenerateDivisionError(op, detail string) error {
	err := &DegenerateDivisionError{Op: op, Detail: detail}
	return errors.WithStack(err)
}

// HyperparameterError is returned when an estimator is constructed or fitted
// with an out-of-range hyperparameter.
type HyperparameterError struct {
	Param  string
	Reason string
	Value  interface{}
}

func (e *HyperparameterError) Error() string {
	return fmt.Sprintf("statkit: invalid hyperparameter '%s': %s (got: %v)", e.Param, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *HyperparameterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.Param).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "HyperparameterError")
}

// NewHyperparameterError creates a HyperparameterError with a stack trace
// attached.
func NewHyperparameterError(param, reason string, value interface{}) error {
	err := &HyperparameterError{Param: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// NumericalInstabilityError is returned when an iterative computation
// produces NaN or Inf, typically from a divergent learning rate.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("statkit: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("iteration", e.Iteration).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace attached.
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}
