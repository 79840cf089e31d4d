package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/analytics/version"
)

// newCmdVersion returns a command that prints the build version.
func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", serviceName, version.Get())
		},
	}
}
