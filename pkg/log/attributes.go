// Package log defines standard attribute keys for model operations.
//
// Keys follow a dotted hierarchy ("model.name", "data.samples") so log
// records from both models can be filtered the same way.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type.
	// Examples: "SimpleLinearRegression", "LogisticRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns).
	FeaturesKey = "data.features"
)

// Fitted values and metrics.
const (
	DurationMsKey = "perf.duration_ms"

	AccuracyKey = "metrics.accuracy"

	// R2ScoreKey records R² for regression. Range is (-∞, 1.0].
	R2ScoreKey = "metrics.r2_score"

	MSEKey = "metrics.mse"

	SlopeKey     = "params.slope"
	InterceptKey = "params.intercept"

	// CoefficientsKey holds the full logistic coefficient vector, bias first.
	CoefficientsKey = "params.coefficients"

	EpochsKey = "training.epochs"
)

// Hyperparameters.
const (
	LearningRateKey = "hyperparams.learning_rate"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationPredictProba = "predict_proba"
	OperationScore        = "score"
	OperationLoad         = "load"
	OperationSave         = "save"

	ErrorLengthMismatch = "LENGTH_MISMATCH"
	ErrorEmptyInput     = "EMPTY_INPUT"
	ErrorDegenerate     = "DEGENERATE_INPUT"
	ErrorNotFitted      = "NOT_FITTED"
)
