package provider

import (
	"context"
	"errors"
	"strings"
	"time"

	"siaga/config"
	"siaga/model"
)

// Factory builds a provider for one call. Tests swap it for a mock.
type Factory func(Config) (model.Provider, error)

// RouterConfig holds settings that do not change between turns.
type RouterConfig struct {
	GeminiBaseURL string
	GroqBaseURL   string
	Timeout       time.Duration
	Factory       Factory // nil means NewProvider
}

// Request is one routed completion.
type Request struct {
	Selection   model.Selection
	Credentials Credentials
	Messages    []model.Message // instruction message followed by the history
	GeminiModel string
	GroqModel   string
	Temperature float64
}

// Result reports the reply text and which backend produced it.
type Result struct {
	Text     string
	Provider string
	Model    string
}

// Router selects a provider for each request and applies the fallback policy.
type Router struct {
	cfg     RouterConfig
	factory Factory
}

// NewRouter creates a Router.
func NewRouter(cfg RouterConfig) *Router {
	factory := cfg.Factory
	if factory == nil {
		factory = NewProvider
	}
	return &Router{cfg: cfg, factory: factory}
}

// Route produces a single completion from exactly one backend.
//
//   - Gemini / Groq: the selected provider's key is required. A missing key is a
//     ConfigurationError and the other provider is never tried.
//   - Auto: Gemini first when its key is present. Any Gemini failure falls back
//     to Groq once if Groq has a key; otherwise the Gemini failure is returned.
//     Without a Gemini key, Groq is used directly.
//
// Every provider failure comes back as a *ProviderCallError.
func (r *Router) Route(ctx context.Context, req Request) (*Result, error) {
	switch req.Selection {
	case model.SelectionProviderA:
		return r.explicit(ctx, config.ProviderGemini, req)
	case model.SelectionProviderB:
		return r.explicit(ctx, config.ProviderGroq, req)
	default:
		return r.auto(ctx, req)
	}
}

func (r *Router) explicit(ctx context.Context, providerID string, req Request) (*Result, error) {
	if req.Credentials.Get(providerID) == "" {
		config.Debugf("[Router] %s selected but %s is missing", providerID, req.Credentials.EnvName(providerID))
		return nil, &ConfigurationError{
			Provider: config.GetProviderDisplayName(providerID),
			Missing:  req.Credentials.EnvName(providerID),
		}
	}
	return r.attempt(ctx, providerID, req)
}

func (r *Router) auto(ctx context.Context, req Request) (*Result, error) {
	hasGemini := req.Credentials.Get(config.ProviderGemini) != ""
	hasGroq := req.Credentials.Get(config.ProviderGroq) != ""

	if !hasGemini {
		if hasGroq {
			config.Debugf("[Router] Auto: no Gemini key, using Groq")
			return r.attempt(ctx, config.ProviderGroq, req)
		}
		return nil, &ConfigurationError{Err: ErrNoCredentials}
	}

	res, err := r.attempt(ctx, config.ProviderGemini, req)
	if err == nil {
		return res, nil
	}
	if !hasGroq {
		return nil, err
	}

	config.Debugf("[Router] Auto: Gemini failed (%v), falling back to Groq", err)
	return r.attempt(ctx, config.ProviderGroq, req)
}

// attempt performs exactly one call against one provider.
func (r *Router) attempt(ctx context.Context, providerID string, req Request) (*Result, error) {
	modelID := r.modelFor(providerID, req)
	display := config.GetProviderDisplayName(providerID)

	p, err := r.factory(Config{
		Type:    MapProviderIDToType(providerID),
		BaseURL: r.baseURL(providerID),
		Model:   modelID,
		APIKey:  req.Credentials.Get(providerID),
		Timeout: r.cfg.Timeout,
	})
	if err != nil {
		return nil, &ProviderCallError{Provider: display, Model: modelID, Err: err}
	}

	start := time.Now()
	text, err := p.Chat(ctx, req.Messages, model.ChatOptions{Temperature: req.Temperature})
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		config.Debugf("[Router] %s (%s) failed after %v: %v", display, modelID, time.Since(start), err)
		var callErr *ProviderCallError
		if errors.As(err, &callErr) {
			return nil, callErr
		}
		return nil, &ProviderCallError{Provider: display, Model: modelID, Err: err}
	}

	config.Debugf("[Router] %s (%s) answered in %v (%d chars)", display, modelID, time.Since(start), len(text))
	return &Result{Text: text, Provider: display, Model: modelID}, nil
}

func (r *Router) modelFor(providerID string, req Request) string {
	if providerID == config.ProviderGemini {
		return req.GeminiModel
	}
	return req.GroqModel
}

func (r *Router) baseURL(providerID string) string {
	if providerID == config.ProviderGemini {
		return r.cfg.GeminiBaseURL
	}
	if r.cfg.GroqBaseURL != "" {
		return r.cfg.GroqBaseURL
	}
	return config.GetProviderDefaultBaseURL(providerID)
}
