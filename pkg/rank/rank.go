// Package rank derives the ranked report and recommendations from a
// completed evaluation. It performs no I/O: a pure transformation over the
// ModelResult list.
package rank

import (
	"sort"

	"github.com/modelbench/modelbench/pkg/eval"
)

// Report is the ranked view of one evaluation run. Ranking holds every
// requested model exactly once, sorted by quality descending with failures
// last. BestQuality and Fastest are nil when no result qualifies.
type Report struct {
	Ranking     []*eval.ModelResult `json:"ranking"`
	BestQuality *eval.ModelResult   `json:"bestQuality,omitempty"`
	Fastest     *eval.ModelResult   `json:"fastest,omitempty"`
	Threshold   int                 `json:"threshold"`
}

// Rank sorts results descending by quality score and derives the two
// recommendations. The sort is stable, so models tied on score keep their
// original request order, and the input slice is left untouched.
func Rank(results []*eval.ModelResult, threshold int) *Report {
	ranking := make([]*eval.ModelResult, len(results))
	copy(ranking, results)

	sort.SliceStable(ranking, func(i, j int) bool {
		return orderingScore(ranking[i]) > orderingScore(ranking[j])
	})

	return &Report{
		Ranking:     ranking,
		BestQuality: bestQuality(ranking, threshold),
		Fastest:     fastest(results),
		Threshold:   threshold,
	}
}

// orderingScore keys the sort. Failures sort below every success, including
// zero-score ones; the -1 is never displayed.
func orderingScore(r *eval.ModelResult) int {
	if !r.Succeeded() {
		return -1
	}

	return r.Score
}

func bestQuality(ranking []*eval.ModelResult, threshold int) *eval.ModelResult {
	for _, r := range ranking {
		if r.Succeeded() && r.Score >= threshold {
			return r
		}
	}

	return nil
}

// fastest picks the minimum latency among successful results, walking in
// request order so the first encountered wins latency ties.
func fastest(results []*eval.ModelResult) *eval.ModelResult {
	var best *eval.ModelResult
	for _, r := range results {
		if !r.Succeeded() {
			continue
		}

		if best == nil || r.LatencyMs < best.LatencyMs {
			best = r
		}
	}

	return best
}
