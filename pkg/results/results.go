// Package results provides utilities for saving, loading, filtering, and
// summarizing evaluation results.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/modelbench/modelbench/pkg/eval"
)

// Stats holds computed statistics from one evaluation run.
type Stats struct {
	ResultsFile     string  `json:"resultsFile"`
	ModelsTotal     int     `json:"modelsTotal"`
	ModelsSucceeded int     `json:"modelsSucceeded"`
	ModelsFailed    int     `json:"modelsFailed"`
	SuccessRate     float64 `json:"successRate"`
	BestScore       int     `json:"bestScore"`
	BestModel       string  `json:"bestModel,omitempty"`
	MeanLatencyMs   int64   `json:"meanLatencyMs"`
}

// Save writes results to a JSON file, indented for readability.
func Save(results []*eval.ModelResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	return nil
}

// Load reads a JSON results file and returns the parsed results.
func Load(path string) ([]*eval.ModelResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var results []*eval.ModelResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse results JSON: %w", err)
	}

	return results, nil
}

// Filter returns the subset of results whose model identifiers contain the
// filter substring.
func Filter(results []*eval.ModelResult, filter string) []*eval.ModelResult {
	if filter == "" {
		return results
	}

	filter = strings.ToLower(filter)
	filtered := make([]*eval.ModelResult, 0, len(results))
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Model), filter) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// CalculateStats computes statistics from evaluation results. Latency is
// averaged over successful results only; failed invocations often record the
// time to an immediate transport error, which would skew the mean.
func CalculateStats(resultsFile string, results []*eval.ModelResult) Stats {
	stats := Stats{
		ResultsFile: resultsFile,
		ModelsTotal: len(results),
		BestScore:   -1,
	}

	var latencyTotal int64
	for _, result := range results {
		if !result.Succeeded() {
			stats.ModelsFailed++
			continue
		}

		stats.ModelsSucceeded++
		latencyTotal += result.LatencyMs

		if result.Score > stats.BestScore {
			stats.BestScore = result.Score
			stats.BestModel = result.Model
		}
	}

	if stats.BestScore < 0 {
		stats.BestScore = 0
	}

	if stats.ModelsTotal > 0 {
		stats.SuccessRate = float64(stats.ModelsSucceeded) / float64(stats.ModelsTotal)
	}
	if stats.ModelsSucceeded > 0 {
		stats.MeanLatencyMs = latencyTotal / int64(stats.ModelsSucceeded)
	}

	return stats
}

// FailureReason returns the recorded error for a failed result, or "" for a
// success.
func FailureReason(r *eval.ModelResult) string {
	if r.Succeeded() {
		return ""
	}

	return r.Error
}
