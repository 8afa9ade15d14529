// Package dataset holds the record type shared by every estimator together
// with loaders for the comma-separated instance files and attribute metadata
// files the command line tool consumes.
//
// A record is a fixed-length sequence of categorical tokens. One position
// holds the class label; every other position is a candidate attribute.
// Numeric-looking tokens are treated as opaque categories.
//
// Example:
//
//	records, err := dataset.LoadInstances("agaricus-lepiota.data", true, dataset.MissingValue)
//	if err != nil {
//	    return err
//	}
//	if err := dataset.Validate(records, 0); err != nil {
//	    return err
//	}
//	candidates := dataset.CandidateIndexes(dataset.Width(records), 0)
package dataset
