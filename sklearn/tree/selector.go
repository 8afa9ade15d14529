package tree

import (
	"math"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// gainTolerance is the largest difference at which two gains count as equal.
const gainTolerance = 1e-12

// AttributeGain is the information gain of splitting on one attribute.
type AttributeGain struct {
	Index int
	Gain  float64
}

// better orders gains descending, then indexes descending.
func better(a, b AttributeGain) bool {
	if math.Abs(a.Gain-b.Gain) > gainTolerance {
		return a.Gain > b.Gain
	}
	return a.Index > b.Index
}

func attributeGains(records []dataset.Record, candidates []int, classIndex int) ([]AttributeGain, error) {
	gains := make([]AttributeGain, len(candidates))
	for i, idx := range candidates {
		g := informationGain(records, idx, classIndex)
		if err := errors.CheckScalar("information_gain", g, idx); err != nil {
			return nil, err
		}
		gains[i] = AttributeGain{Index: idx, Gain: g}
	}
	return gains, nil
}

func chooseBest(records []dataset.Record, candidates []int, classIndex int) (AttributeGain, error) {
	gains, err := attributeGains(records, candidates, classIndex)
	if err != nil {
		return AttributeGain{}, err
	}
	return gains[bestOf(gains)], nil
}

// bestOf returns the position of the preferred gain, scanning in order.
// gains must not be empty.
func bestOf(gains []AttributeGain) int {
	best := 0
	for i := 1; i < len(gains); i++ {
		if better(gains[i], gains[best]) {
			best = i
		}
	}
	return best
}

// rankGains orders gains by repeatedly taking bestOf the rest. better is not
// transitive across near-ties, so a comparison sort could disagree with
// chooseBest on the first place.
func rankGains(gains []AttributeGain) []AttributeGain {
	rest := append([]AttributeGain(nil), gains...)
	ranked := make([]AttributeGain, 0, len(rest))
	for len(rest) > 0 {
		b := bestOf(rest)
		ranked = append(ranked, rest[b])
		rest = append(rest[:b], rest[b+1:]...)
	}
	return ranked
}

func checkSelection(records []dataset.Record, candidates []int, classIndex int) error {
	if len(candidates) == 0 {
		return errors.NewValidationError("candidates", "at least one candidate attribute is required", 0)
	}
	return dataset.Validate(records, append([]int{classIndex}, candidates...)...)
}

// ChooseBestAttributeIndex returns the candidate whose split yields the
// highest information gain with respect to the labels at classIndex. Gains
// within 1e-12 of each other are ties, won by the larger attribute index.
func ChooseBestAttributeIndex(records []dataset.Record, candidates []int, classIndex int) (int, error) {
	if err := checkSelection(records, candidates, classIndex); err != nil {
		return -1, err
	}
	best, err := chooseBest(records, candidates, classIndex)
	if err != nil {
		return -1, err
	}
	return best.Index, nil
}

// RankAttributes returns the gain of every candidate, best first, in the
// order ChooseBestAttributeIndex would prefer them.
func RankAttributes(records []dataset.Record, candidates []int, classIndex int) ([]AttributeGain, error) {
	if err := checkSelection(records, candidates, classIndex); err != nil {
		return nil, err
	}
	gains, err := attributeGains(records, candidates, classIndex)
	if err != nil {
		return nil, err
	}
	return rankGains(gains), nil
}
