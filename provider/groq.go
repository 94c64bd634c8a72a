package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"siaga/model"
)

// GroqProvider implements model.Provider using OpenAI's official Go SDK.
// Groq's API is OpenAI-compatible, so only the base URL differs.
type GroqProvider struct {
	client  openai.Client
	model   string
	baseURL string
}

// NewGroqProvider creates a new Groq provider instance.
//
// Parameters:
//   - baseURL: Groq API base URL (default: "https://api.groq.com/openai/v1")
//   - apiKey: Groq API key (required)
//   - model: Initial model to use (default: "meta-llama/llama-4-scout-17b-16e-instruct")
//   - timeout: per-request timeout, zero for the SDK default
//
// Returns an error if the API key is missing.
func NewGroqProvider(baseURL, apiKey, model string, timeout time.Duration) (*GroqProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Groq API key is required")
	}
	if model == "" {
		model = "meta-llama/llama-4-scout-17b-16e-instruct"
	}

	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		// exactly one attempt per call; fallback is the router's job
		option.WithMaxRetries(0),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}

	return &GroqProvider{
		client:  openai.NewClient(opts...),
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Chat implements Provider.Chat with a single non-streaming completion.
func (p *GroqProvider) Chat(ctx context.Context, messages []model.Message, opts model.ChatOptions) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages:    ConvertToOpenAIMessages(messages),
		Model:       openai.ChatModel(p.model),
		Temperature: openai.Float(opts.Temperature),
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("groq chat completion: no choices in response: %w", ErrEmptyResponse)
	}

	text := completion.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Name implements Provider.Name.
func (p *GroqProvider) Name() string {
	return "Groq"
}

// GetModel implements Provider.GetModel.
func (p *GroqProvider) GetModel() string {
	return p.model
}

// SetModel implements Provider.SetModel.
func (p *GroqProvider) SetModel(model string) {
	p.model = model
}

// Ping implements Provider.Ping by attempting to list models.
func (p *GroqProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx); err != nil {
		return fmt.Errorf("Groq ping failed: %w", err)
	}
	return nil
}
