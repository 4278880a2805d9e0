package rank

import (
	"testing"

	"github.com/modelbench/modelbench/pkg/eval"
)

func success(model string, score int, latencyMs int64) *eval.ModelResult {
	return &eval.ModelResult{
		Model:     model,
		Outcome:   eval.OutcomeSuccess,
		Score:     score,
		LatencyMs: latencyMs,
	}
}

func failure(model string, latencyMs int64) *eval.ModelResult {
	return &eval.ModelResult{
		Model:     model,
		Outcome:   eval.OutcomeFailure,
		LatencyMs: latencyMs,
		Error:     "connection refused",
	}
}

func TestRankCompleteness(t *testing.T) {
	results := []*eval.ModelResult{
		success("model-a", 5, 1000),
		failure("model-b", 50),
		success("model-c", 9, 3000),
	}

	report := Rank(results, eval.DefaultScoreThreshold)

	if len(report.Ranking) != len(results) {
		t.Fatalf("ranking has %d rows, want %d", len(report.Ranking), len(results))
	}

	seen := make(map[string]int)
	for _, r := range report.Ranking {
		seen[r.Model]++
	}
	for _, r := range results {
		if seen[r.Model] != 1 {
			t.Errorf("model %s appears %d times in ranking, want 1", r.Model, seen[r.Model])
		}
	}
}

func TestRankOrdering(t *testing.T) {
	results := []*eval.ModelResult{
		failure("failed-first", 10),
		success("mid", 5, 1000),
		success("zero", 0, 1000),
		success("top", 9, 1000),
	}

	report := Rank(results, eval.DefaultScoreThreshold)

	expected := []string{"top", "mid", "zero", "failed-first"}
	for i, model := range expected {
		if report.Ranking[i].Model != model {
			t.Errorf("ranking[%d] = %s, want %s", i, report.Ranking[i].Model, model)
		}
	}
}

func TestRankFailuresSortBelowZeroScore(t *testing.T) {
	// A zero-score success still outranks a failure.
	results := []*eval.ModelResult{
		failure("broken", 10),
		success("empty", 0, 1000),
	}

	report := Rank(results, eval.DefaultScoreThreshold)

	if report.Ranking[0].Model != "empty" {
		t.Errorf("ranking[0] = %s, want empty", report.Ranking[0].Model)
	}
}

func TestRankTieBreakByRequestOrder(t *testing.T) {
	results := []*eval.ModelResult{
		success("first-requested", 7, 2000),
		success("second-requested", 7, 500),
	}

	report := Rank(results, eval.DefaultScoreThreshold)

	if report.Ranking[0].Model != "first-requested" {
		t.Errorf("ranking[0] = %s, want first-requested (request order on ties)", report.Ranking[0].Model)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	results := []*eval.ModelResult{
		success("low", 1, 100),
		success("high", 9, 100),
	}

	Rank(results, eval.DefaultScoreThreshold)

	if results[0].Model != "low" || results[1].Model != "high" {
		t.Error("Rank reordered the input slice")
	}
}

func TestBestQuality(t *testing.T) {
	tests := map[string]struct {
		results   []*eval.ModelResult
		threshold int
		expected  string // "" means nil
	}{
		"highest qualifying wins": {
			results: []*eval.ModelResult{
				success("a", 7, 100),
				success("b", 9, 100),
			},
			threshold: 7,
			expected:  "b",
		},
		"nobody qualifies": {
			results: []*eval.ModelResult{
				success("a", 6, 100),
				failure("b", 100),
			},
			threshold: 7,
			expected:  "",
		},
		"failures never qualify": {
			results: []*eval.ModelResult{
				failure("a", 100),
			},
			threshold: 0,
			expected:  "",
		},
		"threshold tie keeps request order": {
			results: []*eval.ModelResult{
				success("a", 8, 100),
				success("b", 8, 100),
			},
			threshold: 7,
			expected:  "a",
		},
	}

	for tn, tc := range tests {
		t.Run(tn, func(t *testing.T) {
			report := Rank(tc.results, tc.threshold)

			if tc.expected == "" {
				if report.BestQuality != nil {
					t.Errorf("BestQuality = %s, want nil", report.BestQuality.Model)
				}
				return
			}

			if report.BestQuality == nil {
				t.Fatalf("BestQuality = nil, want %s", tc.expected)
			}
			if report.BestQuality.Model != tc.expected {
				t.Errorf("BestQuality = %s, want %s", report.BestQuality.Model, tc.expected)
			}
		})
	}
}

func TestFastestAmongSuccesses(t *testing.T) {
	// A failing model with the lowest latency must never be reported as
	// fastest.
	results := []*eval.ModelResult{
		failure("model-a", 10),
		success("model-b", 3, 500),
		success("model-c", 8, 2000),
	}

	report := Rank(results, eval.DefaultScoreThreshold)

	if report.Fastest == nil {
		t.Fatal("Fastest = nil, want model-b")
	}
	if report.Fastest.Model != "model-b" {
		t.Errorf("Fastest = %s, want model-b", report.Fastest.Model)
	}
}

func TestFastestLatencyTieKeepsRequestOrder(t *testing.T) {
	results := []*eval.ModelResult{
		success("first", 2, 700),
		success("second", 9, 700),
	}

	report := Rank(results, eval.DefaultScoreThreshold)

	if report.Fastest == nil || report.Fastest.Model != "first" {
		t.Errorf("Fastest = %v, want first (ties break by request order)", report.Fastest)
	}
}

func TestFastestAllFailed(t *testing.T) {
	results := []*eval.ModelResult{
		failure("a", 10),
		failure("b", 20),
	}

	report := Rank(results, eval.DefaultScoreThreshold)

	if report.Fastest != nil {
		t.Errorf("Fastest = %s, want nil", report.Fastest.Model)
	}
	if report.BestQuality != nil {
		t.Errorf("BestQuality = %s, want nil", report.BestQuality.Model)
	}
	if len(report.Ranking) != 2 {
		t.Errorf("ranking has %d rows, want 2", len(report.Ranking))
	}
}
