// Package scenario defines the test-scenario payload candidate models are
// prompted to emit, and the tolerant extraction of that payload from
// free-form model output.
package scenario

// Payload is the JSON object a model is asked to return.
type Payload struct {
	Scenarios []TestScenario `json:"scenarios"`
}

// TestScenario is one generated browser-test scenario.
type TestScenario struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	Steps           []string `json:"steps"`
	ExpectedResults []string `json:"expectedResults"`
}
