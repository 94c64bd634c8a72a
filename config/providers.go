package config

import "siaga/model"

const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// ProviderIDForSelection maps an explicit selection to its provider ID.
// Auto has no single provider and returns "".
func ProviderIDForSelection(s model.Selection) string {
	switch s {
	case model.SelectionProviderA:
		return ProviderGemini
	case model.SelectionProviderB:
		return ProviderGroq
	default:
		return ""
	}
}

// GetProviderDisplayName returns the display name for a provider
func GetProviderDisplayName(providerID string) string {
	switch providerID {
	case ProviderGemini:
		return "Gemini"
	case ProviderGroq:
		return "Groq"
	default:
		return providerID
	}
}

// GetProviderDefaultBaseURL returns the default base URL for a provider.
// Gemini's SDK picks its own endpoint, so it has none.
func GetProviderDefaultBaseURL(providerID string) string {
	switch providerID {
	case ProviderGroq:
		return "https://api.groq.com/openai/v1"
	default:
		return ""
	}
}

// KnownModels is the curated list offered by the model picker. Any other
// identifier can still be typed in.
func KnownModels(providerID string) []string {
	switch providerID {
	case ProviderGemini:
		return []string{
			"gemini-2.5-flash",
			"gemini-2.5-flash-lite",
			"gemini-2.5-pro",
			"gemini-2.0-flash",
			"gemini-2.0-flash-lite",
		}
	case ProviderGroq:
		return []string{
			"meta-llama/llama-4-scout-17b-16e-instruct",
			"meta-llama/llama-4-maverick-17b-128e-instruct",
			"llama-3.3-70b-versatile",
			"llama-3.1-8b-instant",
			"openai/gpt-oss-120b",
			"openai/gpt-oss-20b",
			"qwen/qwen3-32b",
		}
	default:
		return nil
	}
}
