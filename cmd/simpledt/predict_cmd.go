package main

import (
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	var predictInput string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of instances",
		Long:  `Grow a tree from the input instances and write every record of the predict file followed by its predicted class`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if predictInput == "" {
				return errors.New("required records flag was not set")
			}
			s, err := rootConfig.session()
			if err != nil {
				return err
			}
			records, err := dataset.LoadInstances(predictInput, false, rootConfig.missing)
			if err != nil {
				return err
			}
			clf, err := s.fit(rootConfig)
			if err != nil {
				return err
			}
			preds, err := clf.Predict(records)
			if err != nil {
				return err
			}
			out := make([]dataset.Record, len(records))
			for i, r := range records {
				row := make(dataset.Record, 0, len(r)+1)
				row = append(row, r...)
				out[i] = append(row, preds[i].Value)
			}
			return dataset.WriteInstances(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&predictInput, "records", "r", "", "path to a comma-separated file of records to classify (required)")
	return cmd
}
