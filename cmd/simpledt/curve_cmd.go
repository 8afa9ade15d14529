package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/simpledt/sklearn/tree"
	"github.com/YuminosukeSato/simpledt/visualization"
)

func curveCmd(rootConfig *rootCmdConfig) *cobra.Command {
	var (
		partitions int
		output     string
		title      string
	)
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Compute a learning curve",
		Long:  `Deal the input instances into partitions, hold the last one out and report the accuracy of trees grown on increasing numbers of the others`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootConfig.session()
			if err != nil {
				return err
			}
			opts := rootConfig.treeOptions(s.classIndex)
			points, err := tree.ComputeLearningCurve(s.training, partitions, s.classIndex, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range points {
				fmt.Fprintf(out, "%d\t%.4f\n", p.TrainingSize, p.Accuracy)
			}
			if output != "" {
				return visualization.SaveLearningCurve(output, points, title)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&partitions, "partitions", "n", 10, "number of partitions to deal the instances into")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of an image (.png, .svg, .pdf) to plot the curve to")
	cmd.Flags().StringVar(&title, "title", "learning curve", "title of the plot")
	return cmd
}
