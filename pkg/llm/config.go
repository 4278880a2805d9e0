// Package llm provides the completion capability used to invoke candidate
// models, backed by any OpenAI-compatible endpoint.
package llm

import "os"

const (
	DefaultBaseUrlKey = "MODEL_BASE_URL"
	DefaultApiKeyKey  = "MODEL_KEY"
)

// EnvConfig names the environment variables holding the endpoint settings.
// The config file carries variable *names*, never secrets.
type EnvConfig struct {
	BaseUrlKey string `json:"baseUrlKey,omitempty"`
	ApiKeyKey  string `json:"apiKeyKey,omitempty"`
}

func (cfg *EnvConfig) BaseUrl() string {
	key := DefaultBaseUrlKey
	if cfg != nil && cfg.BaseUrlKey != "" {
		key = cfg.BaseUrlKey
	}

	return os.Getenv(key)
}

func (cfg *EnvConfig) ApiKey() string {
	key := DefaultApiKeyKey
	if cfg != nil && cfg.ApiKeyKey != "" {
		key = cfg.ApiKeyKey
	}

	return os.Getenv(key)
}
