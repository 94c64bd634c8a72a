package provider

import (
	"testing"
	"time"

	"google.golang.org/genai"

	"siaga/model"
)

func TestConvertToOpenAIMessages(t *testing.T) {
	input := []model.Message{
		{Role: model.RoleSystem, Content: "aturan"},
		{Role: model.RoleUser, Content: "halo", Timestamp: time.Now()},
		{Role: model.RoleAssistant, Content: "hai"},
		{Role: "tool", Content: "unknown role"},
	}

	result := ConvertToOpenAIMessages(input)
	if len(result) != len(input) {
		t.Fatalf("length mismatch: got %d, want %d", len(result), len(input))
	}

	if result[0].OfSystem == nil {
		t.Error("message 0: expected system message")
	}
	if result[1].OfUser == nil {
		t.Error("message 1: expected user message")
	}
	if result[2].OfAssistant == nil {
		t.Error("message 2: expected assistant message")
	}
	if result[3].OfUser == nil {
		t.Error("message 3: unknown role should map to user")
	}
}

func TestConvertToGeminiContents(t *testing.T) {
	tests := []struct {
		name       string
		input      []model.Message
		wantRoles  []string
		wantSystem string
	}{
		{
			name:      "empty slice",
			input:     []model.Message{},
			wantRoles: []string{},
		},
		{
			name: "system split out",
			input: []model.Message{
				{Role: model.RoleSystem, Content: "aturan"},
				{Role: model.RoleUser, Content: "halo"},
				{Role: model.RoleAssistant, Content: "hai"},
			},
			wantRoles:  []string{genai.RoleUser, genai.RoleModel},
			wantSystem: "aturan",
		},
		{
			name: "multiple system messages joined",
			input: []model.Message{
				{Role: model.RoleSystem, Content: "satu"},
				{Role: model.RoleSystem, Content: "dua"},
				{Role: model.RoleUser, Content: "halo"},
			},
			wantRoles:  []string{genai.RoleUser},
			wantSystem: "satu\n\ndua",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents, system := ConvertToGeminiContents(tt.input)

			if len(contents) != len(tt.wantRoles) {
				t.Fatalf("contents = %d, want %d", len(contents), len(tt.wantRoles))
			}
			for i, c := range contents {
				if c.Role != tt.wantRoles[i] {
					t.Errorf("content %d role = %q, want %q", i, c.Role, tt.wantRoles[i])
				}
			}

			if tt.wantSystem == "" {
				if system != nil {
					t.Error("expected nil system instruction")
				}
				return
			}
			if system == nil || len(system.Parts) != 1 {
				t.Fatal("expected one-part system instruction")
			}
			if system.Parts[0].Text != tt.wantSystem {
				t.Errorf("system = %q, want %q", system.Parts[0].Text, tt.wantSystem)
			}
		})
	}
}
