// Package model provides state management and shared interfaces for
// estimators built on categorical records.
package model

import (
	"sync"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// StateManager manages the fitted state of a model in a thread-safe manner.
// Estimators hold one by composition.
type StateManager struct {
	Fitted bool
	mu     sync.RWMutex

	// Shape of the training data seen by the last successful Fit.
	NAttributes int
	NSamples    int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		Fitted: false,
	}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NAttributes = 0
	s.NSamples = 0
}

// SetDimensions records the record width and record count seen during fitting.
func (s *StateManager) SetDimensions(nAttributes, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NAttributes = nAttributes
	s.NSamples = nSamples
}

// GetDimensions returns the record width and record count seen during fitting.
func (s *StateManager) GetDimensions() (nAttributes, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NAttributes, s.NSamples
}

// RequireFitted returns a NotFittedError naming modelName and method if the
// model has not been fitted.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

// ModelState represents the complete state of a model.
// The describe command prints it as its model summary.
type ModelState struct {
	Fitted      bool                   `json:"fitted"`
	NAttributes int                    `json:"n_attributes,omitempty"`
	NSamples    int                    `json:"n_samples,omitempty"`
	Params      map[string]interface{} `json:"params,omitempty"`
}

// GetState returns the current state as a ModelState struct.
func (s *StateManager) GetState() ModelState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ModelState{
		Fitted:      s.Fitted,
		NAttributes: s.NAttributes,
		NSamples:    s.NSamples,
	}
}
