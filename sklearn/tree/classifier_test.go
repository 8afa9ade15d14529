package tree

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/simpledt/core/model"
	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
	"github.com/YuminosukeSato/simpledt/pkg/log"
)

func newTestClassifier(t *testing.T, opts ...Option) (*DecisionTreeClassifier, *log.TestLogger) {
	t.Helper()
	logger, _ := log.NewTestLogger(log.LevelInfo)
	return NewDecisionTreeClassifier(append([]Option{WithLogger(logger)}, opts...)...), logger
}

func TestDecisionTreeClassifierFitPredict(t *testing.T) {
	clf, logger := newTestClassifier(t, WithClassIndex(tennisClass))
	records := playTennis()

	require.NoError(t, clf.Fit(records))
	assert.True(t, clf.IsFitted())
	assert.Equal(t, 2, clf.GetDepth())
	assert.Equal(t, 5, clf.GetNLeaves())
	assert.Equal(t, []string{"no", "yes"}, clf.Classes())

	preds, err := clf.Predict(records)
	require.NoError(t, err)
	for i, r := range records {
		assert.True(t, preds[i].Is(r[tennisClass]))
	}

	label, err := clf.PredictOne(dataset.Record{"overcast", "cool", "high", "strong", "?"})
	require.NoError(t, err)
	assert.Equal(t, NewLabel("yes"), label)

	score, err := clf.Score(records)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	assert.True(t, logger.ContainsMessage("Training completed"))
	assert.True(t, logger.ContainsField(log.ModelNameKey, "DecisionTreeClassifier"))
	assert.True(t, logger.ContainsField(log.EstimatorIDKey, clf.ID()))
	assert.True(t, logger.ContainsField(log.LeavesKey, 5.0))
}

func TestDecisionTreeClassifierImplementsClassifier(t *testing.T) {
	var c model.Classifier = NewDecisionTreeClassifier()
	assert.False(t, c.IsFitted())
}

func TestDecisionTreeClassifierNotFitted(t *testing.T) {
	clf, _ := newTestClassifier(t)

	_, err := clf.Predict(weather())
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Predict", nf.Method)

	_, err = clf.PredictOne(weather()[0])
	assert.True(t, errors.As(err, &nf))
	_, err = clf.Score(weather())
	assert.True(t, errors.As(err, &nf))
	_, err = clf.PredictDense(mat.NewDense(1, 1, nil))
	assert.True(t, errors.As(err, &nf))

	assert.Nil(t, clf.Tree())
	assert.Equal(t, "DecisionTreeClassifier(not fitted)\n", clf.String())
}

func TestDecisionTreeClassifierFitErrors(t *testing.T) {
	clf, logger := newTestClassifier(t)
	err := clf.Fit(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	clf, logger = newTestClassifier(t, WithCandidateIndexes(0, 1))
	err = clf.Fit(weather())
	var vErr *errors.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.False(t, clf.IsFitted())
	assert.True(t, logger.ContainsMessage("Training failed"))
}

func TestDecisionTreeClassifierDefaultClass(t *testing.T) {
	clf, _ := newTestClassifier(t, WithDefaultClass("unknown"))
	require.NoError(t, clf.Fit(weather()))

	label, err := clf.PredictOne(dataset.Record{"?", "foggy"})
	require.NoError(t, err)
	assert.Equal(t, NewLabel("unknown"), label)

	correct, incorrect, accuracy, err := clf.ClassificationAccuracy([]dataset.Record{{"yes", "sunny"}, {"no", "foggy"}})
	require.NoError(t, err)
	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, incorrect)
	assert.InDelta(t, 0.5, accuracy, 1e-12)

	_, _, _, err = clf.ClassificationAccuracy(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestDecisionTreeClassifierCandidateIndexes(t *testing.T) {
	clf, _ := newTestClassifier(t, WithClassIndex(tennisClass), WithCandidateIndexes(1, 3))
	require.NoError(t, clf.Fit(playTennis()))

	clf.Tree().Walk(func(n *Node, _ int) bool {
		if !n.IsLeaf() {
			assert.Contains(t, []int{1, 3}, n.Attribute())
		}
		return true
	})
}

func TestDecisionTreeClassifierInstancesAreIndependent(t *testing.T) {
	a, _ := newTestClassifier(t)
	b, _ := newTestClassifier(t, WithClassIndex(tennisClass))

	require.NoError(t, a.Fit(weather()))
	require.NoError(t, b.Fit(playTennis()))

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 1, a.GetDepth())
	assert.Equal(t, 2, b.GetDepth())
}

func TestDecisionTreeClassifierParams(t *testing.T) {
	clf, _ := newTestClassifier(t, WithClassIndex(tennisClass), WithDefaultClass("yes"), WithTrace(0))
	params := clf.GetParams()
	assert.Equal(t, tennisClass, params["class_index"])
	assert.Equal(t, "yes", params["default_class"])
	assert.NotContains(t, params, "candidate_indexes")

	require.NoError(t, clf.Fit(playTennis()))
	require.NoError(t, clf.SetParams(map[string]interface{}{
		"class_index":       0,
		"candidate_indexes": []int{1},
		"default_class":     nil,
	}))
	assert.False(t, clf.IsFitted(), "SetParams discards the fitted tree")

	params = clf.GetParams()
	assert.Equal(t, 0, params["class_index"])
	assert.Equal(t, []int{1}, params["candidate_indexes"])
	assert.NotContains(t, params, "default_class")

	assert.Error(t, clf.SetParams(map[string]interface{}{"max_depth": 3}))
	assert.Error(t, clf.SetParams(map[string]interface{}{"class_index": "zero"}))
	assert.Error(t, clf.SetParams(map[string]interface{}{"class_index": -1}))
	assert.Error(t, clf.SetParams(map[string]interface{}{"default_class": 1}))
	assert.Equal(t, 0, clf.GetParams()["class_index"], "failed SetParams leaves params unchanged")
}

func TestDecisionTreeClassifierDense(t *testing.T) {
	X := mat.NewDense(6, 2, []float64{
		0, 1,
		0, 2,
		1, 1,
		1, 2,
		2, 1,
		2, 2,
	})
	y := mat.NewDense(6, 1, []float64{0, 0, 1, 1, 0, 0})

	clf, _ := newTestClassifier(t)
	require.NoError(t, clf.FitDense(X, y))
	assert.Equal(t, 2, clf.GetParams()["class_index"])

	preds, err := clf.PredictDense(X)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.Equal(t, y.At(i, 0), preds.AtVec(i))
	}

	unseen, err := clf.PredictDense(mat.NewDense(1, 2, []float64{7, 1}))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(unseen.AtVec(0)))

	_, err = clf.PredictDense(mat.NewDense(1, 3, nil))
	var dErr *errors.DimensionError
	assert.True(t, errors.As(err, &dErr))
}

func TestDecisionTreeClassifierDenseHonoursOptions(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 1,
		0, 2,
		1, 1,
		1, 2,
	})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	conflicting, _ := newTestClassifier(t, WithClassIndex(0))
	err := conflicting.FitDense(X, y)
	var vErr *errors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "class_index", vErr.ParamName)
	assert.False(t, conflicting.IsFitted())

	agreeing, _ := newTestClassifier(t, WithClassIndex(2))
	assert.NoError(t, agreeing.FitDense(X, y))

	restricted, _ := newTestClassifier(t, WithCandidateIndexes(1))
	require.NoError(t, restricted.FitDense(X, y))
	assert.Equal(t, 1, restricted.Tree().Attribute())
	assert.Equal(t, []int{1}, restricted.GetParams()["candidate_indexes"])
}

func TestDecisionTreeClassifierState(t *testing.T) {
	clf, _ := newTestClassifier(t, WithClassIndex(tennisClass))
	assert.False(t, clf.State().Fitted)

	require.NoError(t, clf.Fit(playTennis()))
	state := clf.State()
	assert.True(t, state.Fitted)
	assert.Equal(t, 5, state.NAttributes)
	assert.Equal(t, 14, state.NSamples)
	assert.Equal(t, tennisClass, state.Params["class_index"])

	require.NoError(t, clf.SetParams(map[string]interface{}{"trace": 1}))
	assert.Equal(t, 0, clf.State().NSamples)
}

func TestDecisionTreeClassifierDenseErrors(t *testing.T) {
	clf, _ := newTestClassifier(t)
	assert.Error(t, clf.FitDense(mat.NewDense(2, 1, nil), mat.NewDense(3, 1, nil)))
	assert.Error(t, clf.FitDense(mat.NewDense(2, 1, nil), mat.NewDense(2, 2, nil)))
}

func TestDecisionTreeClassifierFormat(t *testing.T) {
	clf, _ := newTestClassifier(t, WithClassIndex(tennisClass))
	require.NoError(t, clf.Fit(playTennis()))

	attrs := []dataset.Attribute{{Name: "outlook"}, {Name: "temperature"}, {Name: "humidity"}, {Name: "wind"}, {Name: "play"}}
	out := clf.Format(attrs)
	assert.True(t, strings.HasPrefix(out, "[outlook]\n"))
	assert.Contains(t, out, "[humidity]")
	assert.Contains(t, out, "[wind]")
	assert.Equal(t, clf.Tree().String(), clf.String())
}
