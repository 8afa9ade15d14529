package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

func TestChooseBestAttributeIndex(t *testing.T) {
	best, err := ChooseBestAttributeIndex(playTennis(), []int{0, 1, 2, 3}, tennisClass)
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	best, err = ChooseBestAttributeIndex(playTennis(), []int{1, 2, 3}, tennisClass)
	require.NoError(t, err)
	assert.Equal(t, 2, best)
}

func TestChooseBestAttributeIndexTieGoesToLargerIndex(t *testing.T) {
	records := []dataset.Record{
		{"x", "a", "a"},
		{"y", "b", "b"},
	}
	for _, candidates := range [][]int{{1, 2}, {2, 1}} {
		best, err := ChooseBestAttributeIndex(records, candidates, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, best, "candidates %v", candidates)
	}

	// equal zero gains
	flat := []dataset.Record{{"x", "k", "k", "k"}, {"x", "k", "k", "k"}}
	best, err := ChooseBestAttributeIndex(flat, []int{3, 1, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, best)
}

func TestChooseBestAttributeIndexUsesGivenClassIndex(t *testing.T) {
	// position 0 is noise; the class lives at 2 and is determined by 1
	records := []dataset.Record{
		{"p", "a", "yes"},
		{"q", "b", "no"},
		{"p", "a", "yes"},
		{"q", "a", "yes"},
	}
	best, err := ChooseBestAttributeIndex(records, []int{0, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, best)
}

func TestChooseBestAttributeIndexErrors(t *testing.T) {
	_, err := ChooseBestAttributeIndex(weather(), nil, 0)
	var vErr *errors.ValidationError
	assert.True(t, errors.As(err, &vErr))

	_, err = ChooseBestAttributeIndex(weather(), []int{5}, 0)
	assert.Error(t, err)

	_, err = ChooseBestAttributeIndex([]dataset.Record{{"a", "b"}, {"a"}}, []int{1}, 0)
	var dErr *errors.DimensionError
	assert.True(t, errors.As(err, &dErr))
}

func TestRankAttributes(t *testing.T) {
	ranking, err := RankAttributes(playTennis(), []int{0, 1, 2, 3}, tennisClass)
	require.NoError(t, err)
	require.Len(t, ranking, 4)

	order := make([]int, len(ranking))
	for i, g := range ranking {
		order[i] = g.Index
	}
	assert.Equal(t, []int{0, 2, 3, 1}, order)
	assert.InDelta(t, 0.246750, ranking[0].Gain, 1e-6)
}

func TestRankGainsAgreesWithChooseBestOnNearTies(t *testing.T) {
	// each neighbour pair is within tolerance, the outer pair is not
	gains := []AttributeGain{
		{Index: 2, Gain: 0.5},
		{Index: 1, Gain: 0.5 + 0.8e-12},
		{Index: 0, Gain: 0.5 + 1.6e-12},
	}

	ranked := rankGains(gains)
	require.Len(t, ranked, 3)
	assert.Equal(t, gains[bestOf(gains)], ranked[0])
	assert.Equal(t, 0, ranked[0].Index)
	assert.Equal(t, 2, ranked[1].Index)
	assert.Equal(t, 1, ranked[2].Index)

	// the input is left untouched
	assert.Equal(t, 2, gains[0].Index)
}

func TestRankAttributesFirstIsChosen(t *testing.T) {
	records := playTennis()
	candidates := []int{3, 1, 0, 2}
	ranking, err := RankAttributes(records, candidates, tennisClass)
	require.NoError(t, err)
	best, err := ChooseBestAttributeIndex(records, candidates, tennisClass)
	require.NoError(t, err)
	assert.Equal(t, best, ranking[0].Index)
}
