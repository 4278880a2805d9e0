// Package cli provides the modelbench commands for running evaluations and
// inspecting their results.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root modelbench command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modelbench",
		Short: "Model-quality evaluation harness for browser-test generation",
		Long: `modelbench evaluates candidate language models on how well they generate
browser-test scenarios for a given page analysis, then ranks them by quality
and speed.`,
	}

	// Add subcommands
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewViewCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewVerifyCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
