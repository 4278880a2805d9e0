package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/modelbench/modelbench/pkg/eval"
	"github.com/modelbench/modelbench/pkg/llm"
	"github.com/modelbench/modelbench/pkg/rank"
	"github.com/modelbench/modelbench/pkg/results"
	"github.com/modelbench/modelbench/pkg/util"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	var outputFormat string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run [eval-config-file]",
		Short: "Run a model evaluation",
		Long: `Run a model evaluation using the specified eval configuration file.

Every candidate model receives the same scenario-generation prompt; each
response is scored against the quality rubric and the models are ranked.
The run completes and reports even if every model fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := args[0]

			spec, err := eval.FromFile(configFile)
			if err != nil {
				return fmt.Errorf("failed to load eval config: %w", err)
			}

			completer, err := llm.NewCompleter(spec.Config.Env.BaseUrl(), spec.Config.Env.ApiKey())
			if err != nil {
				return fmt.Errorf("failed to create completion client: %w", err)
			}

			runner, err := eval.NewRunner(spec, completer)
			if err != nil {
				return fmt.Errorf("failed to create eval runner: %w", err)
			}

			display := newProgressDisplay(verbose)

			ctx := util.WithVerbose(cmd.Context(), verbose)
			modelResults, err := runner.RunWithProgress(ctx, display.handleProgress)
			if err != nil {
				return fmt.Errorf("eval failed: %w", err)
			}

			outputFile := fmt.Sprintf("modelbench-%s-out.json", spec.Metadata.Name)
			if err := results.Save(modelResults, outputFile); err != nil {
				return fmt.Errorf("failed to save results to file: %w", err)
			}
			fmt.Printf("\n📄 Results saved to: %s\n", outputFile)

			report := rank.Rank(modelResults, spec.Config.Threshold())

			return displayReport(report, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

// progressDisplay handles interactive progress display
type progressDisplay struct {
	verbose bool
	green   *color.Color
	red     *color.Color
	cyan    *color.Color
	bold    *color.Color
}

func newProgressDisplay(verbose bool) *progressDisplay {
	return &progressDisplay{
		verbose: verbose,
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		cyan:    color.New(color.FgCyan),
		bold:    color.New(color.Bold),
	}
}

func (d *progressDisplay) handleProgress(event eval.ProgressEvent) {
	switch event.Type {
	case eval.EventEvalStart:
		d.bold.Println("\n=== Starting Evaluation ===")

	case eval.EventModelStart:
		fmt.Println()
		d.cyan.Printf("Model: %s\n", event.Result.Model)

	case eval.EventModelInvoking:
		if d.verbose {
			fmt.Printf("  → Waiting for completion...\n")
		}

	case eval.EventModelComplete:
		result := event.Result
		if result.Succeeded() {
			d.green.Printf("  ✓ Scored %d/10 in %dms\n", result.Score, result.LatencyMs)
		} else {
			d.red.Printf("  ✗ Failed after %dms\n", result.LatencyMs)
			if result.Error != "" {
				fmt.Printf("    Error: %s\n", result.Error)
			}
		}

	case eval.EventEvalComplete:
		fmt.Println()
		d.bold.Println("=== Evaluation Complete ===")
	}
}

func displayReport(report *rank.Report, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)

	case "text":
		fmt.Println()
		renderRankedTable(os.Stdout, report)
		printRecommendations(report)
		return nil

	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
