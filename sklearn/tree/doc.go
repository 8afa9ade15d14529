/*
Package tree implements ID3 decision trees over categorical records.

A tree is grown by recursively choosing the attribute with the highest
information gain, splitting the records on its observed values and removing
it from the candidates of the subtrees. Records whose labels all agree become
leaves; exhausted partitions fall back to the majority label of their parent.

The package exposes the algorithm both as plain functions and as an
estimator:

	clf := tree.NewDecisionTreeClassifier(tree.WithClassIndex(0))
	if err := clf.Fit(train); err != nil {
	    return err
	}
	correct, incorrect, accuracy, err := clf.ClassificationAccuracy(test)

	root, err := tree.BuildTree(train, dataset.CandidateIndexes(width, 0), 0, tree.NoLabel)
	label, err := tree.Predict(root, record, tree.NoLabel)

Deterministic tie-breaking:

  - attributes with equal gain (within 1e-12) resolve to the larger index
  - equally frequent class labels resolve to the first one seen
  - branches are ordered by the first appearance of their value

Trees are immutable once built and safe for concurrent prediction.
*/
package tree
