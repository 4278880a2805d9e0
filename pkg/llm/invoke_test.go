package llm

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type completerFunc func(ctx context.Context, model, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, model, prompt string) (string, error) {
	return f(ctx, model, prompt)
}

func TestInvokeSuccess(t *testing.T) {
	completer := completerFunc(func(ctx context.Context, model, prompt string) (string, error) {
		return "response for " + model, nil
	})

	inv := Invoke(context.Background(), completer, "gpt-4o", "prompt", 0)

	if inv.Err != nil {
		t.Fatalf("unexpected error: %v", inv.Err)
	}
	if inv.Response != "response for gpt-4o" {
		t.Errorf("Response = %q", inv.Response)
	}
	if inv.LatencyMs < 0 {
		t.Errorf("LatencyMs = %d, want >= 0", inv.LatencyMs)
	}
}

func TestInvokeRecordsLatencyOnFailure(t *testing.T) {
	completer := completerFunc(func(ctx context.Context, model, prompt string) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return "", fmt.Errorf("boom")
	})

	inv := Invoke(context.Background(), completer, "gpt-4o", "prompt", 0)

	if inv.Err == nil {
		t.Fatal("expected error, got nil")
	}
	if inv.LatencyMs < 10 {
		t.Errorf("LatencyMs = %d, want >= 10", inv.LatencyMs)
	}
}

func TestInvokeTimeoutSurfacesAsError(t *testing.T) {
	completer := completerFunc(func(ctx context.Context, model, prompt string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "too late", nil
		}
	})

	inv := Invoke(context.Background(), completer, "gpt-4o", "prompt", 20*time.Millisecond)

	if inv.Err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

func TestNewCompleterValidation(t *testing.T) {
	if _, err := NewCompleter("", "key"); err == nil {
		t.Error("expected error for missing base URL")
	}
	if _, err := NewCompleter("https://api.example.com/v1", ""); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewCompleter("https://api.example.com/v1", "key"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnvConfigDefaults(t *testing.T) {
	t.Setenv(DefaultBaseUrlKey, "https://default.example.com/v1")
	t.Setenv("CUSTOM_URL", "https://custom.example.com/v1")

	var nilCfg *EnvConfig
	if got := nilCfg.BaseUrl(); got != "https://default.example.com/v1" {
		t.Errorf("nil config BaseUrl = %q", got)
	}

	cfg := &EnvConfig{BaseUrlKey: "CUSTOM_URL"}
	if got := cfg.BaseUrl(); got != "https://custom.example.com/v1" {
		t.Errorf("custom key BaseUrl = %q", got)
	}
}
