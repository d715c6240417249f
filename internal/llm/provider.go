// Package llm wraps the text-completion services the site generator can use.
// A Completer takes one prompt and returns the model's raw text.
package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing means the provider credential is absent.
	ErrConfigurationMissing = errors.New("llm provider not configured")

	// ErrServiceUnavailable wraps every failed completion call.
	ErrServiceUnavailable = errors.New("llm service unavailable")
)

// Completer is the text-completion service consumed by the generator.
type Completer interface {
	// Complete sends prompt to the model and returns its text response.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier (e.g. "gemini", "openai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewProvider builds the named provider. An empty API key yields
// ErrConfigurationMissing so the caller can surface an operator error.
func NewProvider(ctx context.Context, name string, cfg ProviderConfig) (Completer, error) {
	switch name {
	case ProviderGemini, "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrConfigurationMissing)
		}
		p, err := NewGeminiProvider(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrConfigurationMissing)
		}
		return NewOpenAIProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", name)
	}
}

func unavailable(provider string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrServiceUnavailable, provider, err)
}
