package tree

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/simpledt/dataset"
)

// classCounts tallies the labels at classIndex in first-seen order. Callers
// validate the index.
func classCounts(records []dataset.Record, classIndex int) ([]string, []int) {
	pos := make(map[string]int)
	var labels []string
	var counts []int
	for _, r := range records {
		v := r[classIndex]
		if i, ok := pos[v]; ok {
			counts[i]++
			continue
		}
		pos[v] = len(labels)
		labels = append(labels, v)
		counts = append(counts, 1)
	}
	return labels, counts
}

// Entropy returns the base-2 Shannon entropy of the class labels at
// classIndex. Zero, one or single-label record sets have entropy 0. Ragged
// records or an index outside them are rejected.
func Entropy(records []dataset.Record, classIndex int) (float64, error) {
	if err := dataset.Validate(records, classIndex); err != nil {
		return 0, err
	}
	return entropy(records, classIndex), nil
}

func entropy(records []dataset.Record, classIndex int) float64 {
	n := len(records)
	if n <= 1 {
		return 0
	}
	_, counts := classCounts(records, classIndex)
	return entropyOf(counts, n)
}

func entropyOf(counts []int, n int) float64 {
	if len(counts) <= 1 {
		return 0
	}
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = float64(c) / float64(n)
	}
	return stat.Entropy(p) / math.Ln2
}

// InformationGain returns the entropy of records minus the size-weighted
// entropy of the partitions produced by splitting on attributeIndex. Both
// indexes must address a position of every record.
func InformationGain(records []dataset.Record, attributeIndex, classIndex int) (float64, error) {
	if err := dataset.Validate(records, attributeIndex, classIndex); err != nil {
		return 0, err
	}
	return informationGain(records, attributeIndex, classIndex), nil
}

func informationGain(records []dataset.Record, attributeIndex, classIndex int) float64 {
	n := len(records)
	if n == 0 {
		return 0
	}
	parent := entropy(records, classIndex)
	children := 0.0
	splitInstances(records, attributeIndex).Each(func(_ string, group []dataset.Record) {
		children += float64(len(group)) / float64(n) * entropy(group, classIndex)
	})
	return parent - children
}

// MajorityValue returns the most frequent label at classIndex. Ties go to
// the label seen first. Empty input yields NoLabel.
func MajorityValue(records []dataset.Record, classIndex int) (Label, error) {
	if err := dataset.Validate(records, classIndex); err != nil {
		return NoLabel, err
	}
	labels, counts := classCounts(records, classIndex)
	return majorityOf(labels, counts), nil
}

func majorityOf(labels []string, counts []int) Label {
	best := -1
	for i, c := range counts {
		if best < 0 || c > counts[best] {
			best = i
		}
	}
	if best < 0 {
		return NoLabel
	}
	return NewLabel(labels[best])
}
