// Package score applies a deterministic quality rubric to generated test
// scenarios. The rubric is intentionally crude: substring and length checks
// approximate "specific and actionable" versus "generic" scenario text
// without any semantic evaluation, which keeps scoring reproducible across
// runs and free of model dependencies.
package score

import (
	"strings"

	"github.com/modelbench/modelbench/pkg/scenario"
)

// Rubric holds the additive weights applied to a scenario's structural and
// lexical features. Weights are explicit configuration rather than
// process-wide state so two runs with different rubrics can coexist.
type Rubric struct {
	// DescriptionWeight is awarded when the description is present and
	// longer than MinDescriptionLength characters.
	DescriptionWeight int
	// StepsWeight is awarded when the scenario has more than one step.
	StepsWeight int
	// SearchWeight is awarded when any step mentions "search".
	SearchWeight int
	// ExpectedResultsWeight is awarded when the scenario has more than one
	// expected result.
	ExpectedResultsWeight int
	// ActionVerbWeight is awarded when any step contains one of ActionVerbs.
	ActionVerbWeight int

	MinDescriptionLength int
	ActionVerbs          []string

	// MaxScore caps the total.
	MaxScore int
}

// DefaultRubric returns the reference rubric: 2+2+1+2+3, capped at 10.
func DefaultRubric() Rubric {
	return Rubric{
		DescriptionWeight:     2,
		StepsWeight:           2,
		SearchWeight:          1,
		ExpectedResultsWeight: 2,
		ActionVerbWeight:      3,
		MinDescriptionLength:  20,
		ActionVerbs:           []string{"click", "enter", "fill"},
		MaxScore:              10,
	}
}

// Score computes the rubric total for a scenario list. Only the first
// scenario is scored; an empty or absent list scores 0. Absent fields
// contribute nothing, so Score never fails.
func (r Rubric) Score(scenarios []scenario.TestScenario) int {
	if len(scenarios) == 0 {
		return 0
	}

	first := scenarios[0]
	total := 0

	if len(first.Description) > r.MinDescriptionLength {
		total += r.DescriptionWeight
	}

	if len(first.Steps) > 1 {
		total += r.StepsWeight
	}

	if anyStepContains(first.Steps, "search") {
		total += r.SearchWeight
	}

	if len(first.ExpectedResults) > 1 {
		total += r.ExpectedResultsWeight
	}

	for _, verb := range r.ActionVerbs {
		if anyStepContains(first.Steps, verb) {
			total += r.ActionVerbWeight
			break
		}
	}

	if total > r.MaxScore {
		total = r.MaxScore
	}

	return total
}

func anyStepContains(steps []string, substr string) bool {
	for _, step := range steps {
		if strings.Contains(strings.ToLower(step), substr) {
			return true
		}
	}
	return false
}
