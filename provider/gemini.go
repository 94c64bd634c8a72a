package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"siaga/model"
)

// GeminiProvider implements model.Provider using the Google Gen AI SDK against
// the Gemini Developer API (API key auth).
type GeminiProvider struct {
	client  *genai.Client
	model   string
	baseURL string
}

// NewGeminiProvider creates a new Gemini provider instance.
//
// Parameters:
//   - baseURL: API base URL override, empty for the SDK default
//   - apiKey: Gemini API key (required)
//   - model: Initial model to use (default: "gemini-2.5-flash")
//   - timeout: HTTP timeout per request, zero for none
//
// Returns an error if the API key is missing or the client cannot be created.
func NewGeminiProvider(baseURL, apiKey, model string, timeout time.Duration) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	// NewClient does no I/O for the Gemini API backend.
	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Chat implements Provider.Chat with a single non-streaming generate call.
func (p *GeminiProvider) Chat(ctx context.Context, messages []model.Message, opts model.ChatOptions) (string, error) {
	contents, system := ConvertToGeminiContents(messages)

	temp := float32(opts.Temperature)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: system,
		Temperature:       &temp,
	}

	res, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Name implements Provider.Name.
func (p *GeminiProvider) Name() string {
	return "Gemini"
}

// GetModel implements Provider.GetModel.
func (p *GeminiProvider) GetModel() string {
	return p.model
}

// SetModel implements Provider.SetModel.
func (p *GeminiProvider) SetModel(model string) {
	p.model = model
}

// Ping implements Provider.Ping. The Gemini API has no health endpoint, so a
// one-token generate call validates the key and model together.
func (p *GeminiProvider) Ping(ctx context.Context) error {
	maxTokens := int32(1)
	_, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text("ping"),
		&genai.GenerateContentConfig{MaxOutputTokens: maxTokens},
	)
	if err != nil {
		return fmt.Errorf("Gemini ping failed: %w", err)
	}
	return nil
}
