package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/modelbench/modelbench/pkg/eval"
	"github.com/modelbench/modelbench/pkg/rank"
)

// renderRankedTable writes the ranked report as a table: one row per
// requested model, failures included.
func renderRankedTable(w io.Writer, report *rank.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"RANK", "MODEL", "TIME", "SCORE", "STATUS"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for i, result := range report.Ranking {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			result.Model,
			latencyLabel(result),
			scoreLabel(result),
			statusLabel(result),
		})
	}

	table.Render()
}

func latencyLabel(r *eval.ModelResult) string {
	if !r.Succeeded() {
		return "Failed"
	}

	return fmt.Sprintf("%dms", r.LatencyMs)
}

func scoreLabel(r *eval.ModelResult) string {
	if !r.Succeeded() {
		return "N/A"
	}

	return fmt.Sprintf("%d/10", r.Score)
}

func statusLabel(r *eval.ModelResult) string {
	if !r.Succeeded() {
		return "✗"
	}

	return "✓"
}

// printRecommendations renders the two derived recommendations. Models with
// no qualifying result are silently omitted rather than shown as placeholders.
func printRecommendations(report *rank.Report) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	bold := color.New(color.Bold)

	fmt.Println()
	_, _ = bold.Println("=== Recommendations ===")

	if report.BestQuality != nil {
		_, _ = green.Printf("Best quality: %s (score %d/10, %dms)\n",
			report.BestQuality.Model, report.BestQuality.Score, report.BestQuality.LatencyMs)
	} else {
		fmt.Printf("Best quality: no model scored >= %d\n", report.Threshold)
	}

	if report.Fastest != nil {
		_, _ = cyan.Printf("Fastest:      %s (%dms, score %d/10)\n",
			report.Fastest.Model, report.Fastest.LatencyMs, report.Fastest.Score)
	} else {
		fmt.Println("Fastest:      no model succeeded")
	}
}
