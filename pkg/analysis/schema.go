package analysis

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"sigs.k8s.io/yaml"
)

var documentSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"url", "elements"},
	Properties: map[string]*jsonschema.Schema{
		"url":   {Type: "string"},
		"title": {Type: "string"},
		"elements": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"tag"},
				Properties: map[string]*jsonschema.Schema{
					"tag":         {Type: "string"},
					"id":          {Type: "string"},
					"text":        {Type: "string"},
					"placeholder": {Type: "string"},
					"href":        {Type: "string"},
					"inputType":   {Type: "string"},
				},
			},
		},
	},
}

var (
	resolveOnce    sync.Once
	resolvedSchema *jsonschema.Resolved
	resolveErr     error
)

func resolvedDocumentSchema() (*jsonschema.Resolved, error) {
	resolveOnce.Do(func() {
		resolvedSchema, resolveErr = documentSchema.Resolve(nil)
	})

	if resolveErr != nil {
		return nil, fmt.Errorf("failed to resolve analysis document schema: %w", resolveErr)
	}

	return resolvedSchema, nil
}

// ValidateDocument checks raw YAML or JSON bytes against the analysis
// document schema.
func ValidateDocument(data []byte) error {
	schema, err := resolvedDocumentSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("analysis document is not valid YAML or JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("analysis document failed schema validation: %w", err)
	}

	return nil
}
