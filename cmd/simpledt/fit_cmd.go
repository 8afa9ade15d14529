package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	var showRanking bool
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Grow a decision tree and print it",
		Long:  `Grow a decision tree from the input instances, print it and report its accuracy on the training data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootConfig.session()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showRanking {
				if err := printRanking(out, s); err != nil {
					return err
				}
			}
			clf, err := s.fit(rootConfig)
			if err != nil {
				return err
			}
			fmt.Fprint(out, clf.Format(s.attrs))
			correct, incorrect, accuracy, err := clf.ClassificationAccuracy(s.training)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "depth %d, %d leaves\n", clf.GetDepth(), clf.GetNLeaves())
			fmt.Fprintf(out, "training accuracy %.4f (%d correct, %d incorrect)\n", accuracy, correct, incorrect)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showRanking, "rank", false, "print the information gain of every attribute before growing the tree")
	return cmd
}
