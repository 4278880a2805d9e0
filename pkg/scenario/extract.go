package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extract recovers the first JSON object embedded in free-form model output.
// Models frequently wrap their JSON in prose or markdown fencing, so the
// match is greedy: from the first '{' to the last '}' in the text.
//
// Three outcomes:
//   - no brace-bounded span exists: returns (nil, nil), which downstream
//     treats as a successful response with zero scenarios;
//   - the span exists but is not valid JSON: returns an error, which is a
//     failure outcome for the model;
//   - the span parses: returns the payload, whose Scenarios slice may be
//     empty or absent.
func Extract(text string) (*Payload, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, nil
	}

	span := text[start : end+1]

	payload := &Payload{}
	if err := json.Unmarshal([]byte(span), payload); err != nil {
		return nil, fmt.Errorf("response contains a brace-bounded span that is not valid JSON: %w", err)
	}

	return payload, nil
}
