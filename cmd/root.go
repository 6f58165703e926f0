package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:           "tinyhttp",
	Short:         "tinyhttp is a small HTTP/1.1 server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		RootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(newServeCmd())
	RootCmd.AddCommand(newVersionCmd())
}
