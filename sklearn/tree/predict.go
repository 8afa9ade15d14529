package tree

import (
	"github.com/YuminosukeSato/simpledt/core/parallel"
	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// Predict walks tree with record and returns the label of the leaf reached.
// defaultClass is returned for a nil tree, a NoLabel leaf, or a value the
// tree never saw at that node. A record too short for a split attribute is
// a DimensionError.
func Predict(tree *Node, record dataset.Record, defaultClass Label) (Label, error) {
	node := tree
	for {
		if node == nil {
			return defaultClass, nil
		}
		if node.kind == LeafNode {
			if !node.label.Valid {
				return defaultClass, nil
			}
			return node.label, nil
		}
		v, ok := record.Value(node.attribute)
		if !ok {
			return NoLabel, errors.NewDimensionError("Predict", node.attribute+1, len(record), 1)
		}
		child, ok := node.children[v]
		if !ok {
			return defaultClass, nil
		}
		node = child
	}
}

// PredictAll predicts every record, preserving order. Large batches are
// spread across CPU cores.
func PredictAll(tree *Node, records []dataset.Record, defaultClass Label) ([]Label, error) {
	preds := make([]Label, len(records))
	err := parallel.ParallelizeWithThreshold(len(records), parallel.DefaultThreshold, func(start, end int) error {
		for i := start; i < end; i++ {
			label, err := Predict(tree, records[i], defaultClass)
			if err != nil {
				return errors.Wrapf(err, "record %d", i)
			}
			preds[i] = label
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return preds, nil
}
