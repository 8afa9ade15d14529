package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Fit",
			kind:    "invalid input",
			err:     fmt.Errorf("test error"),
			wantMsg: "simpledt: Fit: invalid input: test error",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "simpledt: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)
			assert.Equal(t, tt.wantMsg, err.Error())

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			assert.True(t, strings.Contains(formatted, "errors_test.go"), "expected stack trace to contain test file name")

			var modelErr *ModelError
			assert.True(t, As(err, &modelErr))
		})
	}
}

func TestModelErrorWrapsEmptyData(t *testing.T) {
	err := NewModelError("ClassificationAccuracy", "empty data", ErrEmptyData)
	assert.True(t, Is(err, ErrEmptyData))
	assert.False(t, Is(err, ErrNoCandidates))
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 3, 2, 1)
	assert.Equal(t, "simpledt: Predict: dimension mismatch on axis 1 (attributes). Expected 3, got 2", err.Error())

	var dimErr *DimensionError
	require.True(t, As(err, &dimErr))
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("DecisionTreeClassifier", "Predict")
	assert.Equal(t,
		"simpledt: DecisionTreeClassifier: this model is not fitted yet. Call Fit() before using Predict()",
		err.Error())

	var notFittedErr *NotFittedError
	assert.True(t, As(err, &notFittedErr))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("class_index", "must not be a candidate attribute", 0)
	assert.Equal(t,
		"simpledt: validation failed for parameter 'class_index': must not be a candidate attribute (got: 0)",
		err.Error())

	var valErr *ValidationError
	require.True(t, As(err, &valErr))
	assert.Equal(t, "class_index", valErr.ParamName)
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("LoadInstances", "no records")
	assert.Equal(t, "simpledt: LoadInstances: no records", err.Error())
}

func TestCheckScalar(t *testing.T) {
	assert.NoError(t, CheckScalar("information_gain", 0.5, 1))

	err := CheckScalar("information_gain", math.NaN(), 2)
	require.Error(t, err)
	var numErr *NumericalInstabilityError
	require.True(t, As(err, &numErr))
	assert.Equal(t, 2, numErr.Iteration)
	assert.Contains(t, err.Error(), "information_gain")
}

func TestWarnRoutesToZerologFunc(t *testing.T) {
	var got []error
	SetZerologWarnFunc(func(w error) { got = append(got, w) })
	defer SetZerologWarnFunc(nil)

	Warn(NewUndefinedMetricWarning("accuracy", "no predictions", 0))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error(), "'accuracy' is ill-defined")
}

func TestWarnFallsBackToHandler(t *testing.T) {
	var got error
	SetWarningHandler(func(w error) { got = w })
	Warn(New("plain warning"))
	assert.EqualError(t, got, "plain warning")
}

func TestStackDetail(t *testing.T) {
	err := NewValueError("op", "msg")
	assert.NotEmpty(t, StackDetail(err))
	assert.Empty(t, StackDetail(fmt.Errorf("no stack")))
}
