package util

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithKind unmarshals JSON data into target after checking that the
// document's "kind" field matches expectedKind. Config files are YAML on disk
// but arrive here as JSON via sigs.k8s.io/yaml.
func UnmarshalWithKind(data []byte, target any, expectedKind string) error {
	tmp := struct {
		Kind string `json:"kind"`
	}{}

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	if tmp.Kind != expectedKind {
		return fmt.Errorf("cannot decode kind '%s' as kind '%s'", tmp.Kind, expectedKind)
	}

	return json.Unmarshal(data, target)
}
