package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// Completer issues a single completion call against a named model. The
// implementation owns its own transport policy (retries, if any); callers
// treat any returned error as opaque.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

type openaiCompleter struct {
	client *openai.Client
}

var _ Completer = &openaiCompleter{}

// NewCompleter creates a Completer backed by an OpenAI-compatible API.
func NewCompleter(baseURL, apiKey string) (Completer, error) {
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("both base URL and API key must be provided to create a completer")
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &openaiCompleter{client: &client}, nil
}

func (c *openaiCompleter) Complete(ctx context.Context, model, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return completion.Choices[0].Message.Content, nil
}
