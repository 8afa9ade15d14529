package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
	"github.com/YuminosukeSato/simpledt/pkg/log"
)

// BuildTree grows an ID3 tree over records, splitting only on candidates and
// reading class labels at classIndex. defaultClass is returned for empty
// partitions and exhausted candidates.
//
// Input is validated once: records must share a width covering every index,
// candidates must be distinct, and candidates must not contain classIndex.
func BuildTree(records []dataset.Record, candidates []int, classIndex int, defaultClass Label, opts ...Option) (*Node, error) {
	o := newOptions(opts...)
	if err := validateBuild(records, candidates, classIndex); err != nil {
		return nil, err
	}
	b := &builder{classIndex: classIndex, logger: o.logger}
	return b.build(records, candidates, defaultClass, o.trace)
}

func validateBuild(records []dataset.Record, candidates []int, classIndex int) error {
	if classIndex < 0 {
		return errors.NewValidationError("classIndex", "must be non-negative", classIndex)
	}
	seen := hashset.New()
	for _, c := range candidates {
		if c == classIndex {
			return errors.NewValidationError("candidates", "must not contain the class index", c)
		}
		if seen.Contains(c) {
			return errors.NewValidationError("candidates", "duplicate attribute index", c)
		}
		seen.Add(c)
	}
	return dataset.Validate(records, append([]int{classIndex}, candidates...)...)
}

type builder struct {
	classIndex int
	logger     log.Logger
}

func (b *builder) build(records []dataset.Record, candidates []int, defaultClass Label, trace int) (*Node, error) {
	if len(records) == 0 || len(candidates) == 0 {
		b.tracef(trace, "< ", nil, "Using default class %s", defaultClass)
		return NewLeaf(defaultClass), nil
	}

	labels, counts := classCounts(records, b.classIndex)
	if len(labels) == 1 {
		b.tracef(trace, "< ", nil, "All %d instances have label %s", len(records), labels[0])
		return NewLeaf(NewLabel(labels[0])), nil
	}

	majority := majorityOf(labels, counts)
	best, err := chooseBest(records, candidates, b.classIndex)
	if err != nil {
		return nil, err
	}
	b.tracef(trace, "> ", []any{log.AttributeKey, best.Index, log.GainKey, best.Gain},
		"Creating tree node for attribute index %d", best.Index)

	partitions := splitInstances(records, best.Index)
	remaining := make([]int, 0, len(candidates)-1)
	for _, c := range candidates {
		if c != best.Index {
			remaining = append(remaining, c)
		}
	}

	values := partitions.Values()
	children := make([]*Node, 0, len(values))
	for _, v := range values {
		group, _ := partitions.Get(v)
		b.tracef(trace, "> ", []any{log.AttributeValueKey, v, log.RemainingKey, len(remaining)},
			"Creating subtree for value %s (%d, %d, %d, %s)",
			v, len(group), len(remaining), b.classIndex, majority)
		child, err := b.build(group, remaining, majority, deeper(trace))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewInternal(best.Index, values, children)
}

func deeper(trace int) int {
	if trace > 0 {
		return trace + 1
	}
	return 0
}

// tracef logs one progress line indented by marker repeated trace times.
func (b *builder) tracef(trace int, marker string, fields []any, format string, args ...any) {
	if trace <= 0 || !b.logger.Enabled(context.Background(), log.LevelDebug) {
		return
	}
	msg := strings.Repeat(marker, trace) + fmt.Sprintf(format, args...)
	b.logger.Debug(msg, append([]any{log.DepthKey, trace - 1}, fields...)...)
}
