// Package prompt builds the completion prompt sent to each candidate model.
// The template is fixed and model-agnostic: every candidate receives the exact
// same prompt for a given page analysis and requirements.
package prompt

import (
	"bytes"
	"text/template"

	"github.com/modelbench/modelbench/pkg/analysis"
)

var scenarioPromptTemplate = template.Must(template.New("scenarioPrompt").Parse(
	`You are an expert in end-to-end browser test automation.

Below is an analysis of a web page's UI elements, followed by the testing requirements for that page.

<page_analysis>
{{.Analysis}}
</page_analysis>

<testing_requirements>
{{.Requirements}}
</testing_requirements>

Generate exactly 2 test scenarios for this page. Each scenario must have concrete, actionable steps that reference the elements in the page analysis.

Respond with a single JSON object of this exact shape:
{
  "scenarios": [
    {
      "id": "scenario-id",
      "description": "what the scenario verifies",
      "steps": ["step 1", "step 2"],
      "expectedResults": ["expected result 1", "expected result 2"]
    }
  ]
}
`))

type promptData struct {
	Analysis     string
	Requirements string
}

// Build renders the scenario-generation prompt for the given page analysis
// and free-text requirements. The inputs are always serializable, so Build
// cannot fail.
func Build(a *analysis.UIAnalysis, requirements string) string {
	var out bytes.Buffer

	// Executing a fixed template over plain strings cannot fail.
	_ = scenarioPromptTemplate.Execute(&out, promptData{
		Analysis:     a.Format(),
		Requirements: requirements,
	})

	return out.String()
}
