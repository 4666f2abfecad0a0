package log

// Standard attribute keys for statkit log records. Using these keys keeps
// fit/predict/score logs filterable across estimators.

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "SimpleLinearRegression", "SimpleLogisticRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "linear", "stats", "maths"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of values in the input sequence.
	SamplesKey = "data.samples"

	// DdofKey is the degrees-of-freedom offset applied to a statistic.
	DdofKey = "data.ddof"
)

// Training progress.
const (
	// IterationsKey is the number of gradient-descent iterations performed.
	IterationsKey = "train.iterations"

	// LearningRateKey is the configured learning rate.
	LearningRateKey = "train.learning_rate"

	// CoeffKey and InterceptKey are the fitted parameters.
	CoeffKey     = "model.coeff"
	InterceptKey = "model.intercept"
)
