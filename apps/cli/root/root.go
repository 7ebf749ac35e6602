package root

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the proxy edge operator CLI.
var rootCmd = &cobra.Command{
	Use:           "ytproxy",
	Short:         "YT HTTP proxy edge CLI",
	Long:          "Operator utilities for the YT HTTP proxy edge (CORS header inspection).",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the mutable root command for wiring from subpackages.
func Root() *cobra.Command {
	return rootCmd
}
