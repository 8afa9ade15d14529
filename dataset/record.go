package dataset

import (
	"sort"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// Record is one instance: an ordered sequence of categorical tokens.
// Records are never mutated by this module.
type Record []string

// Width returns the number of positions in the record.
func (r Record) Width() int {
	return len(r)
}

// Value returns the token at index, reporting false when the record is too
// short.
func (r Record) Value(index int) (string, bool) {
	if index < 0 || index >= len(r) {
		return "", false
	}
	return r[index], true
}

// Width returns the width of the first record, or 0 for an empty slice.
func Width(records []Record) int {
	if len(records) == 0 {
		return 0
	}
	return len(records[0])
}

// Validate checks that every record has the width of the first one and that
// each of indexes addresses a position inside that width. Negative indexes
// are always rejected; otherwise an empty slice is valid.
func Validate(records []Record, indexes ...int) error {
	for _, idx := range indexes {
		if idx < 0 {
			return errors.NewValidationError("index", "must be non-negative", idx)
		}
	}
	if len(records) == 0 {
		return nil
	}
	width := len(records[0])
	if width == 0 {
		return errors.NewValidationError("records", "records must have at least one position", 0)
	}
	for i, r := range records {
		if len(r) != width {
			return errors.Wrapf(errors.NewDimensionError("Validate", width, len(r), 1), "record %d", i)
		}
	}
	for _, idx := range indexes {
		if idx >= width {
			return errors.NewValidationError("index", "must address a record position", idx)
		}
	}
	return nil
}

// CandidateIndexes returns every position in [0, width) except classIndex,
// in ascending order.
func CandidateIndexes(width, classIndex int) []int {
	candidates := make([]int, 0, width)
	for i := 0; i < width; i++ {
		if i != classIndex {
			candidates = append(candidates, i)
		}
	}
	return candidates
}

// AttributeValues returns the distinct values at index across records in
// first-seen order.
func AttributeValues(records []Record, index int) ([]string, error) {
	if err := Validate(records, index); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var values []string
	for _, r := range records {
		v := r[index]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values, nil
}

// AttributeValue returns the value of the named attribute in record.
func AttributeValue(record Record, attribute string, names []string) (string, bool) {
	for i, name := range names {
		if name == attribute {
			return record.Value(i)
		}
	}
	return "", false
}

// ValueCount is the number of occurrences of one attribute value.
type ValueCount struct {
	Value string
	Count int
}

// AttributeValueCounts counts the occurrences of each value at index.
// The result is sorted by count, most frequent first; equal counts keep
// first-seen order.
func AttributeValueCounts(records []Record, index int) ([]ValueCount, error) {
	if err := Validate(records, index); err != nil {
		return nil, err
	}
	pos := make(map[string]int)
	var counts []ValueCount
	for _, r := range records {
		v := r[index]
		if i, ok := pos[v]; ok {
			counts[i].Count++
			continue
		}
		pos[v] = len(counts)
		counts = append(counts, ValueCount{Value: v, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}
