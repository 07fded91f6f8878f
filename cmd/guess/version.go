package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/guess/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "guess version %s\n", version.Full())
	},
}
