package tree

import (
	"github.com/YuminosukeSato/simpledt/pkg/log"
)

// Option configures a DecisionTreeClassifier. BuildTree and
// ComputeLearningCurve accept the same options and honour WithLogger and
// WithTrace.
type Option func(*options)

type options struct {
	classIndex   int
	candidates   []int
	defaultClass Label
	trace        int
	logger       log.Logger

	// classIndexSet records an explicit WithClassIndex or SetParams call.
	classIndexSet bool
}

func newOptions(opts ...Option) options {
	o := options{defaultClass: NoLabel}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.GetLoggerWithName("tree")
	}
	return o
}

// WithClassIndex sets the record position holding the class label.
func WithClassIndex(index int) Option {
	return func(o *options) {
		o.classIndex = index
		o.classIndexSet = true
	}
}

// WithCandidateIndexes restricts the attributes the tree may split on.
// By default every position except the class index is a candidate.
func WithCandidateIndexes(indexes ...int) Option {
	return func(o *options) {
		o.candidates = append([]int(nil), indexes...)
	}
}

// WithDefaultClass sets the label predicted when the tree has no answer.
func WithDefaultClass(label string) Option {
	return func(o *options) {
		o.defaultClass = NewLabel(label)
	}
}

// WithTrace enables progress lines during tree building, emitted at debug
// level. Levels above zero set the initial indentation.
func WithTrace(level int) Option {
	return func(o *options) {
		o.trace = level
	}
}

// WithLogger sets the logger used for progress and trace output.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
