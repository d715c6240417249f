package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel      = "gemini-1.5-flash"
	defaultGeminiAPIVersion = "v1beta"
)

// GeminiProvider implements Completer with the Gemini API through the genai SDK.
// The client has no timeout of its own; the caller's context bounds the call.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider builds a Gemini client. A non-empty BaseURL replaces the
// public endpoint.
func NewGeminiProvider(ctx context.Context, cfg ProviderConfig) (*GeminiProvider, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: defaultGeminiAPIVersion,
			BaseURL:    cfg.BaseURL,
		},
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
	}, nil
}

func (p *GeminiProvider) Name() string { return ProviderGemini }

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var genCfg *genai.GenerateContentConfig
	if p.temperature > 0 {
		genCfg = &genai.GenerateContentConfig{Temperature: genai.Ptr(p.temperature)}
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), genCfg)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return "", unavailable(ProviderGemini, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", unavailable(ProviderGemini, errors.New("no candidates returned"))
	}

	text := resp.Text()
	if text == "" {
		return "", unavailable(ProviderGemini, errors.New("no text in response"))
	}

	return text, nil
}
