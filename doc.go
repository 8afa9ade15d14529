// Package simpledt provides an ID3 decision-tree classifier for categorical
// records, together with the data loading, evaluation and command-line
// tooling around it.
//
// Every record is a slice of string values. One position holds the class
// label, the others are candidate attributes. The tree is grown greedily by
// information gain (Shannon entropy, base 2) until a subset is pure or no
// candidate attributes remain.
//
// # Installation
//
//	go get github.com/YuminosukeSato/simpledt
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/simpledt/dataset"
//	    "github.com/YuminosukeSato/simpledt/sklearn/tree"
//	)
//
//	func main() {
//	    records, err := dataset.LoadInstances("agaricus-lepiota.data", true, dataset.MissingValue)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    clf := tree.NewDecisionTreeClassifier(tree.WithClassIndex(0))
//	    if err := clf.Fit(records); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Print(clf)
//
//	    points, err := tree.ComputeLearningCurve(records, 10, 0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, p := range points {
//	        fmt.Println(p.TrainingSize, p.Accuracy)
//	    }
//	}
//
// # Packages
//
//   - dataset: Records, comma-separated instance files and attribute descriptions
//   - sklearn/tree: Entropy, attribute selection, tree building, prediction and learning curves
//   - metrics: Accuracy and confusion matrices
//   - visualization: Learning-curve plots
//   - core/model: Estimator interfaces and fitted-state management
//   - core/parallel: Parallel processing utilities
//   - pkg/errors, pkg/log: Structured errors and logging
//   - cmd/simpledt: Command-line interface
//
// # License
//
// simpledt is released under the MIT License.
package simpledt
