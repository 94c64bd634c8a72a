package config

import (
	"os"
	"strings"
	"sync"
)

// CredentialStore holds API keys for the running process only. Nothing is ever
// written to disk.
//
// Resolution order for Get:
//  1. a value saved in this session through Set (settings panel "Save keys")
//  2. the provider's environment variables, in order (see EnvNames)
type CredentialStore struct {
	mu          sync.RWMutex
	credentials map[string]string // providerID → API key
	lookupEnv   func(string) string
}

// NewCredentialStore creates an empty store that falls back to os.Getenv.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		credentials: make(map[string]string),
		lookupEnv:   os.Getenv,
	}
}

// NewCredentialStoreWithEnv is NewCredentialStore with a custom environment
// lookup; tests use it to avoid touching the process environment.
func NewCredentialStoreWithEnv(lookup func(string) string) *CredentialStore {
	c := NewCredentialStore()
	if lookup != nil {
		c.lookupEnv = lookup
	}
	return c
}

// EnvNames lists the environment variables consulted for a provider.
func EnvNames(providerID string) []string {
	switch providerID {
	case ProviderGemini:
		return []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"}
	case ProviderGroq:
		return []string{"GROQ_API_KEY"}
	default:
		return nil
	}
}

// EnvName returns the primary environment variable name for a provider, used
// when telling the user which credential is missing.
func (c *CredentialStore) EnvName(providerID string) string {
	names := EnvNames(providerID)
	if len(names) == 0 {
		return strings.ToUpper(providerID) + "_API_KEY"
	}
	return names[0]
}

// Get retrieves a credential for a provider
func (c *CredentialStore) Get(providerID string) string {
	if v := c.saved(providerID); v != "" {
		return v
	}
	for _, name := range EnvNames(providerID) {
		if v := strings.TrimSpace(c.lookupEnv(name)); v != "" {
			return v
		}
	}
	return ""
}

// Has reports whether a usable credential exists for a provider.
func (c *CredentialStore) Has(providerID string) bool {
	return c.Get(providerID) != ""
}

// Set stores a session credential. Blank values are ignored so that saving
// with an empty field never wipes a working key.
func (c *CredentialStore) Set(providerID string, apiKey string) bool {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return false
	}
	c.mu.Lock()
	c.credentials[providerID] = apiKey
	c.mu.Unlock()
	return true
}

// Delete removes a session credential; the environment fallback still applies.
func (c *CredentialStore) Delete(providerID string) {
	c.mu.Lock()
	delete(c.credentials, providerID)
	c.mu.Unlock()
}

func (c *CredentialStore) saved(providerID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credentials[providerID]
}

// Source describes where the active credential comes from, for display.
func (c *CredentialStore) Source(providerID string) string {
	if c.saved(providerID) != "" {
		return "session"
	}
	for _, name := range EnvNames(providerID) {
		if strings.TrimSpace(c.lookupEnv(name)) != "" {
			return name
		}
	}
	return ""
}
