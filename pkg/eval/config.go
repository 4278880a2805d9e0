package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/modelbench/modelbench/pkg/llm"
	"github.com/modelbench/modelbench/pkg/util"
)

const (
	KindModelEval = "ModelEval"

	DefaultScoreThreshold = 7
	DefaultTimeoutSeconds = 120
)

// EvalSpec is the top-level config document for one evaluation run.
type EvalSpec struct {
	Metadata EvalMetadata `json:"metadata"`
	Config   EvalConfig   `json:"config"`
}

type EvalMetadata struct {
	Name string `json:"name"`
}

type EvalConfig struct {
	// Models lists the candidate model identifiers, in evaluation order.
	Models []string `json:"models"`

	// Requirements is the free-text testing requirements embedded verbatim
	// in the prompt.
	Requirements string `json:"requirements"`

	// AnalysisFile optionally points at a page analysis document. When
	// empty, the builtin sample snapshot is used.
	AnalysisFile string `json:"analysisFile,omitempty"`

	// ScoreThreshold is the minimum quality score for the best-quality
	// recommendation. Defaults to 7.
	ScoreThreshold *int `json:"scoreThreshold,omitempty"`

	// TimeoutSeconds bounds each model invocation. Defaults to 120.
	TimeoutSeconds *int `json:"timeoutSeconds,omitempty"`

	// MaxConcurrency is the number of models evaluated at once. Defaults
	// to 1 (strictly sequential).
	MaxConcurrency *int `json:"maxConcurrency,omitempty"`

	// Env names the environment variables holding the completion endpoint
	// settings.
	Env *llm.EnvConfig `json:"env,omitempty"`
}

func (e *EvalSpec) UnmarshalJSON(data []byte) error {
	type Doppleganger EvalSpec

	tmp := (*Doppleganger)(e)
	return util.UnmarshalWithKind(data, tmp, KindModelEval)
}

func (c *EvalConfig) Threshold() int {
	if c.ScoreThreshold != nil {
		return *c.ScoreThreshold
	}

	return DefaultScoreThreshold
}

func (c *EvalConfig) Timeout() time.Duration {
	seconds := DefaultTimeoutSeconds
	if c.TimeoutSeconds != nil {
		seconds = *c.TimeoutSeconds
	}

	return time.Duration(seconds) * time.Second
}

func (c *EvalConfig) Concurrency() int {
	if c.MaxConcurrency != nil && *c.MaxConcurrency > 1 {
		return *c.MaxConcurrency
	}

	return 1
}

func (c *EvalConfig) Validate() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("at least one candidate model must be specified")
	}

	for i, m := range c.Models {
		if m == "" {
			return fmt.Errorf("model at index %d is empty", i)
		}
	}

	if c.Requirements == "" {
		return fmt.Errorf("requirements must be specified")
	}

	if c.TimeoutSeconds != nil && *c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeoutSeconds cannot be negative")
	}

	if c.MaxConcurrency != nil && *c.MaxConcurrency < 1 {
		return fmt.Errorf("maxConcurrency must be at least 1")
	}

	return nil
}

// Read parses an EvalSpec from YAML bytes, resolving relative file paths
// against basePath.
func Read(data []byte, basePath string) (*EvalSpec, error) {
	spec := &EvalSpec{}

	err := yaml.Unmarshal(data, spec)
	if err != nil {
		return nil, err
	}

	if err := resolveFilePath(&spec.Config.AnalysisFile, basePath); err != nil {
		return nil, fmt.Errorf("failed to resolve analysis file path: %w", err)
	}

	if err := spec.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid eval config: %w", err)
	}

	return spec, nil
}

func resolveFilePath(filePath *string, basePath string) error {
	if filePath == nil || *filePath == "" {
		return nil
	}

	// If the path is already absolute, leave it as-is
	if filepath.IsAbs(*filePath) {
		return nil
	}

	// Convert relative path to absolute path based on the YAML file's directory
	absPath := filepath.Join(basePath, *filePath)
	*filePath = absPath

	return nil
}

func FromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s' for evalspec: %w", path, err)
	}

	// Convert to absolute path to ensure basePath is absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for '%s': %w", path, err)
	}

	basePath := filepath.Dir(absPath)

	return Read(data, basePath)
}
