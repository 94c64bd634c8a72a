// Package provider implements the two hosted LLM backends and the router that
// picks between them.
//
// # Backends
//
//   - GeminiProvider talks to Google Gemini through google.golang.org/genai.
//   - GroqProvider talks to Groq through its OpenAI-compatible endpoint using
//     the official OpenAI Go SDK.
//
// Both implement model.Provider. The interface lives in the model package to
// avoid import cycles.
//
// # Routing
//
// Router.Route applies the selection policy: an explicit provider needs its own
// key and is never substituted, while Auto prefers Gemini and falls back to
// Groq exactly once. The fallback only ever goes Gemini → Groq.
//
// # Usage
//
//	r := provider.NewRouter(provider.RouterConfig{Timeout: time.Minute})
//	res, err := r.Route(ctx, provider.Request{
//	    Selection:   model.SelectionAuto,
//	    Credentials: creds,
//	    Messages:    messages,
//	    GeminiModel: "gemini-2.5-flash",
//	    GroqModel:   "llama-3.3-70b-versatile",
//	    Temperature: 0.4,
//	})
package provider

import "time"

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeGemini ProviderType = "gemini"
	ProviderTypeGroq   ProviderType = "groq"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}
