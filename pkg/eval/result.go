package eval

import "github.com/modelbench/modelbench/pkg/scenario"

// Outcome tags a ModelResult as a success or a failure.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// ModelResult is the recorded outcome of evaluating one candidate model.
// Latency and outcome are recorded even on failure: the final report must
// account for every requested model exactly once.
type ModelResult struct {
	Model     string  `json:"model"`
	Outcome   Outcome `json:"outcome"`
	LatencyMs int64   `json:"latencyMs"`

	// Set on success.
	Score     int                     `json:"score"`
	Scenarios []scenario.TestScenario `json:"scenarios,omitempty"`

	// Set on failure.
	Error string `json:"error,omitempty"`
}

func (r *ModelResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}
