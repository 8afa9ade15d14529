package tree

import (
	"time"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/metrics"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
	"github.com/YuminosukeSato/simpledt/pkg/log"
)

// ClassificationAccuracy predicts every record with tree and compares the
// result to the label at classIndex. A NoLabel prediction never counts as
// correct. An empty record set is an error wrapping errors.ErrEmptyData.
func ClassificationAccuracy(tree *Node, records []dataset.Record, classIndex int, defaultClass Label) (correct, incorrect int, accuracy float64, err error) {
	if len(records) == 0 {
		return 0, 0, 0, errors.NewModelError("ClassificationAccuracy", "no records to evaluate", errors.ErrEmptyData)
	}
	if err := dataset.Validate(records, classIndex); err != nil {
		return 0, 0, 0, err
	}

	predicted, err := PredictAll(tree, records, defaultClass)
	if err != nil {
		return 0, 0, 0, err
	}
	actual := make([]Label, len(records))
	for i, r := range records {
		actual[i] = NewLabel(r[classIndex])
	}

	correct, incorrect, err = metrics.AccuracyCounts(actual, predicted)
	if err != nil {
		return 0, 0, 0, err
	}
	return correct, incorrect, metrics.Accuracy(correct, incorrect), nil
}

// LearningCurvePoint is the accuracy of a tree trained on TrainingSize
// records.
type LearningCurvePoint struct {
	TrainingSize int
	Accuracy     float64
}

/*
ComputeLearningCurve deals records round-robin into numPartitions groups and
holds the last group out for testing. For k = 1 .. numPartitions-1 it trains
a tree on groups 0 .. k-1, splitting on every attribute except classIndex,
and measures its accuracy on the held-out group.

numPartitions must be at least 2. An empty held-out group is an error
wrapping errors.ErrEmptyData.
*/
func ComputeLearningCurve(records []dataset.Record, numPartitions, classIndex int, opts ...Option) ([]LearningCurvePoint, error) {
	if numPartitions < 2 {
		return nil, errors.NewValidationError("numPartitions", "must be at least 2", numPartitions)
	}
	if err := dataset.Validate(records, classIndex); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	logger := o.logger.With(log.OperationKey, log.OperationLearningCurve, log.PartitionsKey, numPartitions)

	parts, err := PartitionInstances(records, numPartitions)
	if err != nil {
		return nil, err
	}
	heldOut := parts[numPartitions-1]
	candidates := dataset.CandidateIndexes(dataset.Width(records), classIndex)

	var training []dataset.Record
	points := make([]LearningCurvePoint, 0, numPartitions-1)
	for k := 1; k < numPartitions; k++ {
		start := time.Now()
		training = append(training, parts[k-1]...)
		tree, err := BuildTree(training, candidates, classIndex, NoLabel, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "learning curve step %d", k)
		}
		_, _, accuracy, err := ClassificationAccuracy(tree, heldOut, classIndex, NoLabel)
		if err != nil {
			return nil, errors.Wrapf(err, "learning curve step %d", k)
		}
		points = append(points, LearningCurvePoint{TrainingSize: len(training), Accuracy: accuracy})
		logger.Info("Learning curve point",
			log.TrainingSizeKey, len(training),
			log.AccuracyKey, accuracy,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return points, nil
}
