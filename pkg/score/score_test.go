package score

import (
	"testing"

	"github.com/modelbench/modelbench/pkg/scenario"
)

func fullMarksScenario() scenario.TestScenario {
	return scenario.TestScenario{
		ID:          "search-product",
		Description: "Search for a product and verify results appear",
		Steps: []string{
			"click search box",
			"enter query",
			"click search button",
		},
		ExpectedResults: []string{
			"results list visible",
			"result count > 0",
		},
	}
}

func TestScoreFullMarks(t *testing.T) {
	rubric := DefaultRubric()

	got := rubric.Score([]scenario.TestScenario{fullMarksScenario()})
	if got != 10 {
		t.Errorf("Score = %d, want 10 (2+2+1+2+3)", got)
	}
}

func TestScoreEmptyList(t *testing.T) {
	rubric := DefaultRubric()

	if got := rubric.Score(nil); got != 0 {
		t.Errorf("Score(nil) = %d, want 0", got)
	}

	if got := rubric.Score([]scenario.TestScenario{}); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}
}

func TestScorePartialRubric(t *testing.T) {
	rubric := DefaultRubric()

	tests := map[string]struct {
		scenario scenario.TestScenario
		expected int
	}{
		"short description only": {
			scenario: scenario.TestScenario{Description: "too short"},
			expected: 0,
		},
		"long description only": {
			scenario: scenario.TestScenario{Description: "verify the page loads and renders correctly"},
			expected: 2,
		},
		"single vague step": {
			scenario: scenario.TestScenario{Steps: []string{"do the thing"}},
			expected: 0,
		},
		"two vague steps": {
			scenario: scenario.TestScenario{Steps: []string{"open page", "look at it"}},
			expected: 2,
		},
		"search mention": {
			scenario: scenario.TestScenario{Steps: []string{"use the search bar"}},
			expected: 1,
		},
		"action verb": {
			scenario: scenario.TestScenario{Steps: []string{"click the button"}},
			expected: 3,
		},
		"fill counts as action verb": {
			scenario: scenario.TestScenario{Steps: []string{"fill in the form"}},
			expected: 3,
		},
		"two expected results": {
			scenario: scenario.TestScenario{ExpectedResults: []string{"a", "b"}},
			expected: 2,
		},
		"one expected result": {
			scenario: scenario.TestScenario{ExpectedResults: []string{"a"}},
			expected: 0,
		},
	}

	for tn, tc := range tests {
		t.Run(tn, func(t *testing.T) {
			got := rubric.Score([]scenario.TestScenario{tc.scenario})
			if got != tc.expected {
				t.Errorf("Score = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestScoreOnlyFirstScenario(t *testing.T) {
	rubric := DefaultRubric()

	// The second scenario would score 10, but only the first is scored.
	scenarios := []scenario.TestScenario{
		{Description: "short"},
		fullMarksScenario(),
	}

	if got := rubric.Score(scenarios); got != 0 {
		t.Errorf("Score = %d, want 0 (only the first scenario counts)", got)
	}
}

func TestScoreCapped(t *testing.T) {
	rubric := DefaultRubric()
	rubric.ActionVerbWeight = 9

	// 2+2+1+2+9 = 16 without the cap.
	if got := rubric.Score([]scenario.TestScenario{fullMarksScenario()}); got != 10 {
		t.Errorf("Score = %d, want 10 (capped)", got)
	}
}

func TestScoreActionVerbAwardedOnce(t *testing.T) {
	rubric := DefaultRubric()

	// Multiple distinct verbs still award ActionVerbWeight a single time:
	// click+enter+fill in one step list scores 3 for verbs, not 9.
	got := rubric.Score([]scenario.TestScenario{{
		Steps: []string{"click the box", "enter text", "fill the field"},
	}})

	// 2 (steps) + 3 (verbs) = 5
	if got != 5 {
		t.Errorf("Score = %d, want 5", got)
	}
}

func TestScoreIdempotent(t *testing.T) {
	rubric := DefaultRubric()
	scenarios := []scenario.TestScenario{fullMarksScenario()}

	first := rubric.Score(scenarios)
	for i := 0; i < 5; i++ {
		if got := rubric.Score(scenarios); got != first {
			t.Fatalf("Score changed across runs: %d then %d", first, got)
		}
	}
}
