package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

func main() {
	err := errors.SafeExecute("simpledt", cliParser().Execute)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:           "simpledt",
		Short:         "simpledt grows ID3 decision trees over categorical data",
		Long:          `A tool to grow entropy-based decision trees from comma-separated categorical data, evaluate them, and use them to make predictions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setupLogging(cmd.ErrOrStderr())
		},
	}
	config.bindFlags(rootCmd)
	rootCmd.AddCommand(
		versionCmd(),
		fitCmd(config),
		testCmd(config),
		predictCmd(config),
		curveCmd(config),
		describeCmd(config),
	)
	return rootCmd
}
