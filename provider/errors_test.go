package provider

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"configuration", &ConfigurationError{Provider: "Gemini", Missing: "GOOGLE_API_KEY"}, "ConfigurationError"},
		{"provider call", &ProviderCallError{Provider: "Groq", Model: "m", Err: errors.New("x")}, "ProviderCallError"},
		{"wrapped provider call", fmt.Errorf("turn: %w", &ProviderCallError{Err: errors.New("x")}), "ProviderCallError"},
		{"plain", errors.New("x"), "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Provider: "Groq", Missing: "GROQ_API_KEY"}
	if !strings.Contains(err.Error(), "GROQ_API_KEY") {
		t.Errorf("message %q should name the missing variable", err.Error())
	}

	none := &ConfigurationError{Err: ErrNoCredentials}
	if !errors.Is(none, ErrNoCredentials) {
		t.Error("expected errors.Is to find ErrNoCredentials")
	}
	if !strings.Contains(none.Error(), "GOOGLE_API_KEY") || !strings.Contains(none.Error(), "GROQ_API_KEY") {
		t.Errorf("message %q should name both variables", none.Error())
	}
}

func TestProviderCallErrorUnwrap(t *testing.T) {
	err := &ProviderCallError{Provider: "Gemini", Model: "gemini-2.5-flash", Err: ErrEmptyResponse}
	if !errors.Is(err, ErrEmptyResponse) {
		t.Error("expected errors.Is to find ErrEmptyResponse")
	}
	if !strings.Contains(err.Error(), "Gemini") || !strings.Contains(err.Error(), "gemini-2.5-flash") {
		t.Errorf("message %q should name provider and model", err.Error())
	}
}
