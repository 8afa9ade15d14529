package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/metrics"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
	"github.com/YuminosukeSato/simpledt/pkg/log"
	"github.com/YuminosukeSato/simpledt/sklearn/tree"
)

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	var testInput string
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from the input instances and test it against a separate set of instances`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if testInput == "" {
				return errors.New("required test flag was not set")
			}
			s, err := rootConfig.session()
			if err != nil {
				return err
			}
			testSet, err := rootConfig.loadInstances(testInput)
			if err != nil {
				return err
			}
			clf, err := s.fit(rootConfig)
			if err != nil {
				return err
			}
			rootConfig.logger().Info("Testing tree", log.SamplesKey, len(testSet))
			correct, incorrect, accuracy, err := clf.ClassificationAccuracy(testSet)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%f accuracy, %d correct, %d incorrect\n", accuracy, correct, incorrect)
			return printConfusion(out, clf, testSet, s.classIndex)
		},
	}
	cmd.Flags().StringVarP(&testInput, "test", "t", "", "path to a comma-separated file of instances to test the tree against (required)")
	return cmd
}

func printConfusion(w io.Writer, clf *tree.DecisionTreeClassifier, records []dataset.Record, classIndex int) error {
	preds, err := clf.Predict(records)
	if err != nil {
		return err
	}
	labels := clf.Classes()
	cm, err := confusion(records, preds, classIndex, labels)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "actual \\ predicted")
	for _, l := range labels {
		fmt.Fprintf(tw, "\t%s", l)
	}
	fmt.Fprintln(tw)
	for i, l := range labels {
		fmt.Fprint(tw, l)
		for j := range labels {
			fmt.Fprintf(tw, "\t%d", int(cm.At(i, j)))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// confusion compares labels rather than their values so that a missing
// prediction never matches a class spelled as the empty string.
func confusion(records []dataset.Record, preds []tree.Label, classIndex int, classes []string) (*mat.Dense, error) {
	actual := make([]tree.Label, len(records))
	for i, r := range records {
		actual[i] = tree.NewLabel(r[classIndex])
	}
	labels := make([]tree.Label, len(classes))
	for i, c := range classes {
		labels[i] = tree.NewLabel(c)
	}
	return metrics.ConfusionMatrix(actual, preds, labels)
}
