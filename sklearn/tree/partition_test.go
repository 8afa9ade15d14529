package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/simpledt/dataset"
)

func TestSplitInstances(t *testing.T) {
	records := playTennis()
	parts, err := SplitInstances(records, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"sunny", "overcast", "rain"}, parts.Values())
	assert.Equal(t, 3, parts.Len())
	assert.Equal(t, len(records), parts.Total())

	sunny, ok := parts.Get("sunny")
	require.True(t, ok)
	require.Len(t, sunny, 5)
	// relative order preserved
	assert.Equal(t, records[0], sunny[0])
	assert.Equal(t, records[1], sunny[1])
	assert.Equal(t, records[7], sunny[2])

	_, ok = parts.Get("snow")
	assert.False(t, ok)
}

func TestSplitInstancesExhaustiveAndDisjoint(t *testing.T) {
	records := playTennis()
	for idx := 0; idx < tennisClass; idx++ {
		parts, err := SplitInstances(records, idx)
		require.NoError(t, err)
		total := 0
		parts.Each(func(value string, group []dataset.Record) {
			assert.NotEmpty(t, group)
			for _, r := range group {
				assert.Equal(t, value, r[idx])
			}
			total += len(group)
		})
		assert.Equal(t, len(records), total)
	}
}

func TestSplitInstancesEmpty(t *testing.T) {
	parts, err := SplitInstances(nil, 0)
	require.NoError(t, err)
	assert.Zero(t, parts.Len())
	assert.Empty(t, parts.Values())
}

func TestPartitionInstances(t *testing.T) {
	records := make([]dataset.Record, 7)
	for i := range records {
		records[i] = dataset.Record{string(rune('a' + i))}
	}

	parts, err := PartitionInstances(records, 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, []dataset.Record{{"a"}, {"d"}, {"g"}}, parts[0])
	assert.Equal(t, []dataset.Record{{"b"}, {"e"}}, parts[1])
	assert.Equal(t, []dataset.Record{{"c"}, {"f"}}, parts[2])

	parts, err = PartitionInstances(records[:2], 4)
	require.NoError(t, err)
	assert.Len(t, parts, 4)
	assert.Empty(t, parts[3])

	_, err = PartitionInstances(records, 0)
	assert.Error(t, err)
}
