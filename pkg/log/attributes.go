// Package log defines standard attribute keys for tree induction and evaluation.
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples", "tree.depth") to enable structured log analysis and filtering.
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "DecisionTreeClassifier"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific model instance.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "learning_curve"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "tree.builder", "cli"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of records in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of candidate attributes.
	FeaturesKey = "data.features"

	// ClassIndexKey is the column holding the class label.
	ClassIndexKey = "data.class_index"

	// PartitionsKey indicates the number of partitions a dataset was split into.
	PartitionsKey = "data.partitions"
)

// Tree Induction
// These attributes describe the progress of the recursive tree builder.
const (
	// DepthKey records the recursion depth of the node being built (root = 0).
	DepthKey = "tree.depth"

	// AttributeKey records the attribute index chosen for a split.
	AttributeKey = "tree.attribute"

	// AttributeValueKey records the attribute value of the branch being built.
	AttributeValueKey = "tree.attribute_value"

	// GainKey records an information gain value.
	GainKey = "tree.gain"

	// EntropyKey records an entropy value.
	EntropyKey = "tree.entropy"

	// DefaultClassKey records the default class propagated to a subtree.
	DefaultClassKey = "tree.default_class"

	// LabelKey records the class label of a leaf.
	LabelKey = "tree.label"

	// RemainingKey records how many candidate attributes remain.
	RemainingKey = "tree.remaining_candidates"

	// LeavesKey records the number of leaves of a finished tree.
	LeavesKey = "tree.leaves"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy, in [0.0, 1.0].
	AccuracyKey = "metrics.accuracy"

	// CorrectKey records the number of correctly classified records.
	CorrectKey = "metrics.correct"

	// IncorrectKey records the number of misclassified records.
	IncorrectKey = "metrics.incorrect"

	// TrainingSizeKey records the training-set size of a learning-curve point.
	TrainingSizeKey = "metrics.training_size"
)

// Prediction and Output Context
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// SuggestionKey provides helpful suggestions for resolving issues.
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
const (
	OperationFit           = "fit"
	OperationPredict       = "predict"
	OperationScore         = "score"
	OperationLearningCurve = "learning_curve"

	PhaseTraining  = "training"
	PhaseTesting   = "testing"
	PhaseInference = "inference"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
)
