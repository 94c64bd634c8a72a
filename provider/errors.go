package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredentials is wrapped by the ConfigurationError returned when Auto
	// selection finds no key for either provider.
	ErrNoCredentials = errors.New("no API credentials configured")

	// ErrEmptyResponse marks a call that succeeded at the transport level but
	// returned no text. It is treated as a failed attempt.
	ErrEmptyResponse = errors.New("provider returned an empty response")
)

// ConfigurationError reports that no usable credential exists for the
// requested path. It is shown to the user and never retried.
type ConfigurationError struct {
	Provider string // display name, empty for "no provider at all"
	Missing  string // environment variable name of the missing key
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("%v: set GOOGLE_API_KEY or GROQ_API_KEY, or enter a key in settings", e.Err)
	}
	return fmt.Sprintf("%s is not set for %s", e.Missing, e.Provider)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ProviderCallError wraps any failure of a single provider call: network,
// auth, quota, malformed or empty response.
type ProviderCallError struct {
	Provider string
	Model    string
	Err      error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("%s (%s) call failed: %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Err
}

// Kind names the error category for user-facing detail lines.
func Kind(err error) string {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return "ConfigurationError"
	}
	var callErr *ProviderCallError
	if errors.As(err, &callErr) {
		return "ProviderCallError"
	}
	return "Error"
}
