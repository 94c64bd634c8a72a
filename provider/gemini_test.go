package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"siaga/model"
	"siaga/provider/testutil"
)

// TestGeminiProviderImplementsInterface is a compile-time check that
// GeminiProvider implements the Provider interface.
func TestGeminiProviderImplementsInterface(t *testing.T) {
	var _ model.Provider = (*GeminiProvider)(nil)
}

type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	GenerationConfig struct {
		Temperature *float64 `json:"temperature"`
	} `json:"generationConfig"`
}

func geminiServer(t *testing.T, text string, status int, captured *geminiRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
			return
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": text}},
					},
					"finishReason": "STOP",
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGeminiProviderChat(t *testing.T) {
	var captured geminiRequest
	srv := geminiServer(t, "Ringkasan situasi:\naman", http.StatusOK, &captured)
	defer srv.Close()

	p, err := NewGeminiProvider(srv.URL, "test-key", "gemini-2.5-flash", 5*time.Second)
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}

	got, err := p.Chat(context.Background(), testutil.TestMessages(), model.ChatOptions{Temperature: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Ringkasan situasi:\naman" {
		t.Errorf("Chat() = %q", got)
	}

	// system message travels as systemInstruction, the rest as contents
	if captured.SystemInstruction == nil || len(captured.SystemInstruction.Parts) == 0 {
		t.Fatal("expected systemInstruction in request")
	}
	if len(captured.Contents) != 3 {
		t.Fatalf("contents = %d, want 3", len(captured.Contents))
	}
	if captured.Contents[1].Role != "model" {
		t.Errorf("assistant role = %q, want model", captured.Contents[1].Role)
	}
	if captured.GenerationConfig.Temperature == nil || *captured.GenerationConfig.Temperature != 0.5 {
		t.Errorf("temperature = %v, want 0.5", captured.GenerationConfig.Temperature)
	}
}

func TestGeminiProviderChatErrors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		status    int
		wantEmpty bool
	}{
		{name: "empty text", text: "", status: http.StatusOK, wantEmpty: true},
		{name: "whitespace text", text: "\n\t ", status: http.StatusOK, wantEmpty: true},
		{name: "permission denied", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := geminiServer(t, tt.text, tt.status, nil)
			defer srv.Close()

			p, err := NewGeminiProvider(srv.URL, "test-key", "gemini-2.5-flash", 5*time.Second)
			if err != nil {
				t.Fatalf("NewGeminiProvider: %v", err)
			}

			_, err = p.Chat(context.Background(), testutil.SingleUserMessage("halo"), model.ChatOptions{Temperature: 0.4})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantEmpty && !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("expected ErrEmptyResponse, got %v", err)
			}
		})
	}
}

func TestNewGeminiProviderDefaults(t *testing.T) {
	p, err := NewGeminiProvider("", "key", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "Gemini" {
		t.Errorf("Name() = %q", p.Name())
	}
	if p.GetModel() != "gemini-2.5-flash" {
		t.Errorf("GetModel() = %q", p.GetModel())
	}

	if _, err := NewGeminiProvider("", "", "", 0); err == nil {
		t.Error("expected error for missing API key")
	}
}
