// Package model provides the interfaces shared by estimators over
// categorical records.
package model

import (
	"github.com/YuminosukeSato/simpledt/dataset"
)

// Fitter is the interface for models that learn from labelled records.
type Fitter interface {
	// Fit trains the model. The class label lives at a configured index of
	// every record.
	Fit(records []dataset.Record) error
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the fraction of records whose class label is predicted
	// correctly.
	Score(records []dataset.Record) (float64, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}

// Estimator combines the fitting and parameter interfaces.
type Estimator interface {
	Fitter
	ParameterGetter
	ParameterSetter
	IsFitted() bool
}

// Classifier combines interfaces for classification models.
type Classifier interface {
	Estimator
	Scorer

	// Classes returns the distinct class labels seen during fitting, in
	// first-seen order.
	Classes() []string
}
