package model

import "context"

// Provider abstracts the hosted LLM backends (Gemini, Groq) using the
// provider-agnostic types of the model layer.
//
// This interface is defined in the model package (not provider package) to avoid
// import cycles: provider implementations import model, and model can use the
// Provider interface without importing the provider package.
type Provider interface {
	// Chat sends the instruction message plus history and returns the full reply.
	Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error)

	// Name returns the display name of the backend ("Gemini", "Groq").
	Name() string

	// GetModel returns the model identifier used for API calls.
	GetModel() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable with the configured key.
	Ping(ctx context.Context) error
}

// ChatOptions carries per-request sampling parameters.
type ChatOptions struct {
	Temperature float64
}
