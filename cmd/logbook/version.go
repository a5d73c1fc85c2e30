package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden at build time with -ldflags "-X main.version=...".
var version = "devel"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the logbook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}
