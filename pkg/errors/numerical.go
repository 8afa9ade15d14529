package errors

import (
	"math"
)

// CheckScalar checks a single scalar value for numerical instability.
// The index identifies where the value came from (an attribute index for
// information gain checks).
func CheckScalar(operation string, value float64, index int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, index)
	}
	return nil
}
