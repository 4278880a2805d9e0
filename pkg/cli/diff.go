package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/modelbench/modelbench/pkg/eval"
	"github.com/modelbench/modelbench/pkg/results"
)

// DiffResult holds the comparison between two evaluation runs
type DiffResult struct {
	BaseStats    results.Stats
	HeadStats    results.Stats
	Regressions  []ModelDiff
	Improvements []ModelDiff
	New          []ModelDiff
	Removed      []ModelDiff
}

// ModelDiff holds the diff for a single candidate model
type ModelDiff struct {
	Model         string
	BaseSucceeded bool
	HeadSucceeded bool
	BaseScore     int
	HeadScore     int
	BaseLatencyMs int64
	HeadLatencyMs int64
	FailureReason string
}

// NewDiffCmd creates the diff command
func NewDiffCmd() *cobra.Command {
	var baseFile string
	var currentFile string

	cmd := &cobra.Command{
		Use:   "diff --base <results-file> --current <results-file>",
		Short: "Compare two evaluation runs",
		Long: `Compare evaluation results between two runs of the same model set, for
example before and after a prompt or endpoint change.

Shows per-model score regressions and improvements, plus overall changes.

Example:
  modelbench diff --base results-monday.json --current results-friday.json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseResults, err := results.Load(baseFile)
			if err != nil {
				return fmt.Errorf("failed to load base results: %w", err)
			}

			currentResults, err := results.Load(currentFile)
			if err != nil {
				return fmt.Errorf("failed to load current results: %w", err)
			}

			diff := calculateDiff(baseFile, currentFile, baseResults, currentResults)
			outputTextDiff(diff)

			return nil
		},
	}

	cmd.Flags().StringVar(&baseFile, "base", "", "Base results file")
	cmd.Flags().StringVar(&currentFile, "current", "", "Current results file")

	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("current")

	return cmd
}

func calculateDiff(baseFile, currentFile string, baseResults, currentResults []*eval.ModelResult) DiffResult {
	diff := DiffResult{
		BaseStats:    results.CalculateStats(baseFile, baseResults),
		HeadStats:    results.CalculateStats(currentFile, currentResults),
		Regressions:  make([]ModelDiff, 0),
		Improvements: make([]ModelDiff, 0),
		New:          make([]ModelDiff, 0),
		Removed:      make([]ModelDiff, 0),
	}

	baseMap := make(map[string]*eval.ModelResult)
	for _, r := range baseResults {
		baseMap[r.Model] = r
	}

	currentMap := make(map[string]*eval.ModelResult)
	for _, r := range currentResults {
		currentMap[r.Model] = r
	}

	for _, current := range currentResults {
		base, exists := baseMap[current.Model]
		if !exists {
			diff.New = append(diff.New, ModelDiff{
				Model:         current.Model,
				HeadSucceeded: current.Succeeded(),
				HeadScore:     current.Score,
				HeadLatencyMs: current.LatencyMs,
			})
			continue
		}

		modelDiff := ModelDiff{
			Model:         current.Model,
			BaseSucceeded: base.Succeeded(),
			HeadSucceeded: current.Succeeded(),
			BaseScore:     base.Score,
			HeadScore:     current.Score,
			BaseLatencyMs: base.LatencyMs,
			HeadLatencyMs: current.LatencyMs,
			FailureReason: results.FailureReason(current),
		}

		switch {
		case regressed(base, current):
			diff.Regressions = append(diff.Regressions, modelDiff)
		case improved(base, current):
			diff.Improvements = append(diff.Improvements, modelDiff)
		}
	}

	for _, base := range baseResults {
		if _, exists := currentMap[base.Model]; !exists {
			diff.Removed = append(diff.Removed, ModelDiff{
				Model:         base.Model,
				BaseSucceeded: base.Succeeded(),
				BaseScore:     base.Score,
				BaseLatencyMs: base.LatencyMs,
			})
		}
	}

	return diff
}

func regressed(base, current *eval.ModelResult) bool {
	if base.Succeeded() && !current.Succeeded() {
		return true
	}

	return base.Succeeded() && current.Succeeded() && current.Score < base.Score
}

func improved(base, current *eval.ModelResult) bool {
	if !base.Succeeded() && current.Succeeded() {
		return true
	}

	return base.Succeeded() && current.Succeeded() && current.Score > base.Score
}

func outputTextDiff(diff DiffResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	bold := color.New(color.Bold)

	_, _ = bold.Println("=== Evaluation Diff ===")
	fmt.Println()

	if len(diff.Regressions) > 0 {
		_, _ = red.Printf("Regressions (%d):\n", len(diff.Regressions))
		for _, r := range diff.Regressions {
			if !r.HeadSucceeded {
				_, _ = red.Printf("  ✗ %s: score %d/10 → FAILED\n", r.Model, r.BaseScore)
				if r.FailureReason != "" {
					fmt.Printf("      %s\n", r.FailureReason)
				}
			} else {
				_, _ = red.Printf("  ✗ %s: score %d/10 → %d/10\n", r.Model, r.BaseScore, r.HeadScore)
			}
		}
		fmt.Println()
	}

	if len(diff.Improvements) > 0 {
		_, _ = green.Printf("Improvements (%d):\n", len(diff.Improvements))
		for _, r := range diff.Improvements {
			if !r.BaseSucceeded {
				_, _ = green.Printf("  ✓ %s: FAILED → score %d/10\n", r.Model, r.HeadScore)
			} else {
				_, _ = green.Printf("  ✓ %s: score %d/10 → %d/10\n", r.Model, r.BaseScore, r.HeadScore)
			}
		}
		fmt.Println()
	}

	if len(diff.New) > 0 {
		_, _ = yellow.Printf("New Models (%d):\n", len(diff.New))
		for _, r := range diff.New {
			if r.HeadSucceeded {
				_, _ = green.Printf("  + %s: score %d/10\n", r.Model, r.HeadScore)
			} else {
				_, _ = red.Printf("  + %s: FAILED\n", r.Model)
			}
		}
		fmt.Println()
	}

	if len(diff.Removed) > 0 {
		_, _ = yellow.Printf("Removed Models (%d):\n", len(diff.Removed))
		for _, r := range diff.Removed {
			fmt.Printf("  - %s\n", r.Model)
		}
		fmt.Println()
	}

	_, _ = bold.Println("=== Summary ===")
	fmt.Println()

	fmt.Printf("             Base        Head        Change\n")
	fmt.Printf("Succeeded:   %d/%-8d %d/%-8d ",
		diff.BaseStats.ModelsSucceeded, diff.BaseStats.ModelsTotal,
		diff.HeadStats.ModelsSucceeded, diff.HeadStats.ModelsTotal)
	printChange(diff.HeadStats.SuccessRate - diff.BaseStats.SuccessRate)

	fmt.Printf("Best score:  %d/10        %d/10\n",
		diff.BaseStats.BestScore, diff.HeadStats.BestScore)
}

func printChange(change float64) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if change > 0 {
		_, _ = green.Printf("+%.1f%%\n", change*100)
	} else if change < 0 {
		_, _ = red.Printf("%.1f%%\n", change*100)
	} else {
		fmt.Println("0.0%")
	}
}
