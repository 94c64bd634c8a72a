package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"siaga/model"
)

func TestFromUserConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(u *UserConfig)
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c *Config) {
				if c.Selection != model.SelectionAuto {
					t.Errorf("Selection = %q", c.Selection)
				}
				if c.Mode != model.ModeNowAction {
					t.Errorf("Mode = %q", c.Mode)
				}
				if c.Style != model.StyleCasual {
					t.Errorf("Style = %q", c.Style)
				}
				if c.Temperature != DefaultTemperature {
					t.Errorf("Temperature = %v", c.Temperature)
				}
				if c.RequestTimeout != DefaultRequestTimeout {
					t.Errorf("RequestTimeout = %v", c.RequestTimeout)
				}
			},
		},
		{
			name:   "temperature clamped high",
			modify: func(u *UserConfig) { u.Temperature = 1.7 },
			check: func(t *testing.T, c *Config) {
				if c.Temperature != 1.0 {
					t.Errorf("Temperature = %v, want 1.0", c.Temperature)
				}
			},
		},
		{
			name:   "temperature clamped low",
			modify: func(u *UserConfig) { u.Temperature = -0.2 },
			check: func(t *testing.T, c *Config) {
				if c.Temperature != 0 {
					t.Errorf("Temperature = %v, want 0", c.Temperature)
				}
			},
		},
		{
			name: "empty models fall back to defaults",
			modify: func(u *UserConfig) {
				u.Gemini.Model = ""
				u.Groq.Model = ""
				u.RequestTimeoutSeconds = 0
			},
			check: func(t *testing.T, c *Config) {
				if c.GeminiModel != DefaultGeminiModel || c.GroqModel != DefaultGroqModel {
					t.Errorf("models = %q/%q", c.GeminiModel, c.GroqModel)
				}
				if c.RequestTimeout != DefaultRequestTimeout {
					t.Errorf("RequestTimeout = %v", c.RequestTimeout)
				}
			},
		},
		{
			name: "display spellings accepted",
			modify: func(u *UserConfig) {
				u.Provider = "Groq"
				u.Mode = "Preparedness Plan"
				u.Style = "Santai"
				u.RequestTimeoutSeconds = 30
			},
			check: func(t *testing.T, c *Config) {
				if c.Selection != model.SelectionProviderB {
					t.Errorf("Selection = %q", c.Selection)
				}
				if c.Mode != model.ModePreparednessPlan {
					t.Errorf("Mode = %q", c.Mode)
				}
				if c.Style != model.StyleCasual {
					t.Errorf("Style = %q", c.Style)
				}
				if c.RequestTimeout != 30*time.Second {
					t.Errorf("RequestTimeout = %v", c.RequestTimeout)
				}
			},
		},
		{name: "unknown provider", modify: func(u *UserConfig) { u.Provider = "openai" }, wantErr: true},
		{name: "unknown mode", modify: func(u *UserConfig) { u.Mode = "panic" }, wantErr: true},
		{name: "unknown style", modify: func(u *UserConfig) { u.Style = "pirate" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := DefaultUserConfig()
			if tt.modify != nil {
				tt.modify(u)
			}

			cfg, err := FromUserConfig(u)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SIAGA_PROVIDER", "gemini")
	t.Setenv("SIAGA_MODE", "preparedness_plan")
	t.Setenv("SIAGA_STYLE", "formal")
	t.Setenv("SIAGA_TEMPERATURE", "0.65")
	t.Setenv("SIAGA_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("SIAGA_GROQ_MODEL", "llama-3.1-8b-instant")

	u := DefaultUserConfig()
	if err := u.applyEnvOverrides(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Provider != "gemini" || u.Mode != "preparedness_plan" || u.Style != "formal" {
		t.Errorf("enums not overridden: %+v", u)
	}
	if u.Temperature != 0.65 {
		t.Errorf("Temperature = %v", u.Temperature)
	}
	if u.Gemini.Model != "gemini-2.5-pro" || u.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("models = %q/%q", u.Gemini.Model, u.Groq.Model)
	}
}

func TestApplyEnvOverridesBadTemperature(t *testing.T) {
	t.Setenv("SIAGA_TEMPERATURE", "hangat")

	if err := DefaultUserConfig().applyEnvOverrides(); err == nil {
		t.Error("expected error for non-numeric temperature")
	}
}

func TestLoadUserConfig(t *testing.T) {
	t.Run("creates template on first run", func(t *testing.T) {
		dir := t.TempDir()

		u, err := LoadUserConfig(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Provider != "auto" {
			t.Errorf("Provider = %q", u.Provider)
		}

		info, err := os.Stat(filepath.Join(dir, "config.toml"))
		if err != nil {
			t.Fatalf("template not written: %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}

		// the template must decode to the same defaults
		again, err := LoadUserConfig(dir)
		if err != nil {
			t.Fatalf("re-read: %v", err)
		}
		if *again != *u {
			t.Errorf("template decodes to %+v, want %+v", again, u)
		}
	})

	t.Run("reads existing file", func(t *testing.T) {
		dir := t.TempDir()
		content := `provider = "groq"
mode = "preparedness_plan"
temperature = 0.2

[groq]
model = "llama-3.3-70b-versatile"
`
		if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		u, err := LoadUserConfig(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Provider != "groq" || u.Mode != "preparedness_plan" || u.Temperature != 0.2 {
			t.Errorf("decoded %+v", u)
		}
		if u.Groq.Model != "llama-3.3-70b-versatile" {
			t.Errorf("Groq.Model = %q", u.Groq.Model)
		}
		// keys absent from the file keep their defaults
		if u.Style != "casual" || u.Gemini.Model != DefaultGeminiModel {
			t.Errorf("defaults lost: %+v", u)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("provider = "), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadUserConfig(dir); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("SIAGA_CONFIG_DIR", t.TempDir())
	t.Setenv("SIAGA_PROVIDER", "groq")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Selection != model.SelectionProviderB {
		t.Errorf("Selection = %q, env override should win", cfg.Selection)
	}
	if cfg.CredentialStore == nil {
		t.Error("CredentialStore should be initialised")
	}
	if cfg.BaseURL(ProviderGroq) != "https://api.groq.com/openai/v1" {
		t.Errorf("groq BaseURL = %q", cfg.BaseURL(ProviderGroq))
	}

	st := cfg.Settings()
	if st.Selection != cfg.Selection || st.GroqModel != cfg.GroqModel {
		t.Errorf("Settings() = %+v", st)
	}
}
