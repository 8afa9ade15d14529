package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/sklearn/tree"
)

func describeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print value counts for every attribute",
		Long:  `Print value counts for every attribute, the information gain of every candidate attribute and a summary of the tree grown from the input`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootConfig.session()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printValueCounts(out, s); err != nil {
				return err
			}
			if err := printRanking(out, s); err != nil {
				return err
			}
			clf, err := s.fit(rootConfig)
			if err != nil {
				return err
			}
			printState(out, clf)
			return nil
		},
	}
}

func attributeLabel(attrs []dataset.Attribute, i int) string {
	if i < len(attrs) {
		return attrs[i].Name
	}
	return fmt.Sprintf("attr %d", i)
}

func printValueCounts(w io.Writer, s *session) error {
	n := float64(len(s.training))
	for i := 0; i < dataset.Width(s.training); i++ {
		counts, err := dataset.AttributeValueCounts(s.training, i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:", attributeLabel(s.attrs, i))
		for _, vc := range counts {
			fmt.Fprintf(w, " %s = %d (%5.3f),", vc.Value, vc.Count, float64(vc.Count)/n)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printRanking(w io.Writer, s *session) error {
	candidates := dataset.CandidateIndexes(dataset.Width(s.training), s.classIndex)
	if len(candidates) == 0 {
		return nil
	}
	ranking, err := tree.RankAttributes(s.training, candidates, s.classIndex)
	if err != nil {
		return err
	}
	h, err := tree.Entropy(s.training, s.classIndex)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "entropy(%s) = %.3f\n", attributeLabel(s.attrs, s.classIndex), h)
	for _, g := range ranking {
		fmt.Fprintf(w, "gain(%s) = %.3f\n", attributeLabel(s.attrs, g.Index), g.Gain)
	}
	return nil
}

func printState(w io.Writer, clf *tree.DecisionTreeClassifier) {
	state := clf.State()
	fmt.Fprintf(w, "model: fitted=%t, %d samples, %d attributes, depth %d, %d leaves\n",
		state.Fitted, state.NSamples, state.NAttributes, clf.GetDepth(), clf.GetNLeaves())
	keys := make([]string, 0, len(state.Params))
	for k := range state.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s = %v\n", k, state.Params[k])
	}
}
