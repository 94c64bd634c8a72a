package testutil

import (
	"context"
	"sync"

	"siaga/model"
)

// MockProvider implements model.Provider for testing
type MockProvider struct {
	// Configurable responses
	ChatFunc func(ctx context.Context, messages []model.Message, opts model.ChatOptions) (string, error)
	PingFunc func(ctx context.Context) error

	// State
	name         string
	currentModel string
}

// NewMockProvider creates a mock provider that answers "Mock response".
func NewMockProvider(name, modelName string) *MockProvider {
	mock := &MockProvider{
		name:         name,
		currentModel: modelName,
	}
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, opts model.ChatOptions) (string, error) {
		return "Mock response", nil
	}
	mock.PingFunc = func(ctx context.Context) error {
		return nil
	}
	return mock
}

func (m *MockProvider) Chat(ctx context.Context, messages []model.Message, opts model.ChatOptions) (string, error) {
	return m.ChatFunc(ctx, messages, opts)
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) SetModel(model string) {
	m.currentModel = model
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

// CallRecorder counts Chat calls per provider key and records the last
// messages and options each provider received.
type CallRecorder struct {
	mu       sync.Mutex
	calls    map[string]int
	messages map[string][]model.Message
	options  map[string]model.ChatOptions
	order    []string
}

func NewCallRecorder() *CallRecorder {
	return &CallRecorder{
		calls:    make(map[string]int),
		messages: make(map[string][]model.Message),
		options:  make(map[string]model.ChatOptions),
	}
}

// Wrap returns a copy of p whose Chat is recorded under key before delegating.
func (r *CallRecorder) Wrap(key string, p *MockProvider) *MockProvider {
	inner := p.ChatFunc
	wrapped := *p
	wrapped.ChatFunc = func(ctx context.Context, messages []model.Message, opts model.ChatOptions) (string, error) {
		r.mu.Lock()
		r.calls[key]++
		r.messages[key] = messages
		r.options[key] = opts
		r.order = append(r.order, key)
		r.mu.Unlock()
		return inner(ctx, messages, opts)
	}
	return &wrapped
}

func (r *CallRecorder) Calls(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[key]
}

func (r *CallRecorder) Messages(key string) []model.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.messages[key]
}

func (r *CallRecorder) Options(key string) model.ChatOptions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.options[key]
}

// Order returns the provider keys in call order.
func (r *CallRecorder) Order() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}
