package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel  = openai.GPT4o
	openAISystemMessage = "You are a helpful AI assistant that generates websites based on user prompts and specific formatting instructions."
)

// OpenAIProvider implements Completer with the OpenAI chat completions API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIProvider builds an OpenAI client, honouring a BaseURL override.
func NewOpenAIProvider(cfg ProviderConfig) *OpenAIProvider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: temperature,
	}
}

func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: openAISystemMessage},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: p.temperature,
		},
	)
	if err != nil {
		return "", unavailable(ProviderOpenAI, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", unavailable(ProviderOpenAI, errors.New("empty response"))
	}

	return resp.Choices[0].Message.Content, nil
}
