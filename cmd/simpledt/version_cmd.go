package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in simpledt's version
	VersionMajor = 1
	// VersionMinor is the minor number in simpledt's version
	VersionMinor = 0
	// VersionPatch is the patch number in simpledt's version
	VersionPatch = 3
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of simpledt",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simpledt v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
