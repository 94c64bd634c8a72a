package provider

import (
	"fmt"

	"siaga/config"
	"siaga/model"
)

// NewProvider creates a provider based on configuration.
//
// Supported provider types:
//   - ProviderTypeGemini: Google Gemini API
//   - ProviderTypeGroq: Groq OpenAI-compatible API
//
// Returns an error if the provider type is unknown or the provider-specific
// constructor fails (e.g. missing API key).
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case ProviderTypeGemini:
		return NewGeminiProvider(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout)
	case ProviderTypeGroq:
		return NewGroqProvider(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// MapProviderIDToType converts a config provider ID to its ProviderType.
// Unknown IDs are passed through as-is and rejected by the factory.
func MapProviderIDToType(id string) ProviderType {
	switch id {
	case config.ProviderGemini:
		return ProviderTypeGemini
	case config.ProviderGroq:
		return ProviderTypeGroq
	default:
		return ProviderType(id)
	}
}
