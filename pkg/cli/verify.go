package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/modelbench/modelbench/pkg/results"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var minBestScore int
	var minSuccessRate float64

	cmd := &cobra.Command{
		Use:   "verify <results-file>",
		Short: "Verify evaluation results meet thresholds",
		Long: `Verify that saved evaluation results meet minimum thresholds.

Exits with code 0 if all thresholds are met, code 1 otherwise.
Use 'modelbench view' to inspect the detailed results.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resultsFile := args[0]

			loaded, err := results.Load(resultsFile)
			if err != nil {
				return fmt.Errorf("failed to load results file: %w", err)
			}

			stats := results.CalculateStats(resultsFile, loaded)

			scoreMet := stats.BestScore >= minBestScore
			successMet := stats.SuccessRate >= minSuccessRate
			passed := scoreMet && successMet

			outputVerifyResults(stats, minBestScore, minSuccessRate, scoreMet, successMet, passed)

			if !passed {
				// silent error (SilenceErrors: true), sets exit code 1
				return fmt.Errorf("thresholds not met")
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&minBestScore, "score", 0, "Minimum best quality score (0-10)")
	cmd.Flags().Float64Var(&minSuccessRate, "success", 0.0, "Minimum model success rate (0.0-1.0)")

	return cmd
}

func outputVerifyResults(stats results.Stats, minBestScore int, minSuccessRate float64, scoreMet, successMet, passed bool) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	_, _ = bold.Println("=== Threshold Verification ===")
	fmt.Println()

	if scoreMet {
		_, _ = green.Printf("Best Score:   %d/10 >= %d/10 ✓", stats.BestScore, minBestScore)
	} else {
		_, _ = red.Printf("Best Score:   %d/10 < %d/10 ✗", stats.BestScore, minBestScore)
	}
	if stats.BestModel != "" {
		fmt.Printf("  (%s)", stats.BestModel)
	}
	fmt.Println()

	if successMet {
		_, _ = green.Printf("Success Rate: %.2f%% >= %.2f%% ✓\n",
			stats.SuccessRate*100, minSuccessRate*100)
	} else {
		_, _ = red.Printf("Success Rate: %.2f%% < %.2f%% ✗\n",
			stats.SuccessRate*100, minSuccessRate*100)
	}

	fmt.Println()
	if passed {
		_, _ = green.Println("Result: PASSED")
	} else {
		_, _ = red.Println("Result: FAILED")
	}
}
