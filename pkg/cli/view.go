package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/modelbench/modelbench/pkg/eval"
	"github.com/modelbench/modelbench/pkg/rank"
	"github.com/modelbench/modelbench/pkg/results"
)

// NewViewCmd creates the view command for rendering saved evaluation results.
func NewViewCmd() *cobra.Command {
	var (
		modelFilter string
		threshold   = eval.DefaultScoreThreshold
		showDetail  = true
	)

	cmd := &cobra.Command{
		Use:   "view <results-file>",
		Short: "Pretty-print evaluation results from a JSON file",
		Long: `Render the JSON output produced by "modelbench run" in a human-friendly
format, including the ranked table and per-model scenario detail.

Examples:
  modelbench view modelbench-search-page-out.json
  modelbench view --model gpt-4o results.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := results.Load(args[0])
			if err != nil {
				return err
			}

			filtered := results.Filter(loaded, modelFilter)
			if len(filtered) == 0 {
				if modelFilter == "" {
					return errors.New("no model results found in results file")
				}
				return fmt.Errorf("no models matched filter %q", modelFilter)
			}

			report := rank.Rank(filtered, threshold)

			renderRankedTable(os.Stdout, report)
			printRecommendations(report)

			if showDetail {
				for _, result := range report.Ranking {
					fmt.Println()
					printModelDetail(result)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&modelFilter, "model", "", "Only show results for models whose identifier contains this value")
	cmd.Flags().IntVar(&threshold, "threshold", threshold, "Minimum score for the best-quality recommendation")
	cmd.Flags().BoolVar(&showDetail, "detail", showDetail, "Include per-model scenario detail")

	return cmd
}

func printModelDetail(result *eval.ModelResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	_, _ = bold.Printf("Model: %s\n", result.Model)

	if !result.Succeeded() {
		_, _ = red.Printf("  Status: FAILED (%dms)\n", result.LatencyMs)
		if reason := results.FailureReason(result); reason != "" {
			fmt.Printf("  Error: %s\n", reason)
		}
		return
	}

	_, _ = green.Printf("  Status: SUCCESS (score %d/10, %dms)\n", result.Score, result.LatencyMs)

	if len(result.Scenarios) == 0 {
		fmt.Println("  Scenarios: none returned")
		return
	}

	fmt.Printf("  Scenarios (%d):\n", len(result.Scenarios))
	for _, s := range result.Scenarios {
		name := s.ID
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("    - %s: %s\n", name, s.Description)
		fmt.Printf("      steps: %d, expected results: %d\n", len(s.Steps), len(s.ExpectedResults))
	}
}
