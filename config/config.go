package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"siaga/model"
)

type ProviderSection struct {
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url,omitempty"`
}

// UserConfig mirrors config.toml on disk.
type UserConfig struct {
	Provider              string          `toml:"provider"`
	Mode                  string          `toml:"mode"`
	Style                 string          `toml:"style"`
	Temperature           float64         `toml:"temperature"`
	RequestTimeoutSeconds int             `toml:"request_timeout_seconds"`
	Gemini                ProviderSection `toml:"gemini"`
	Groq                  ProviderSection `toml:"groq"`
}

// Config is the validated runtime configuration.
type Config struct {
	Selection      model.Selection
	Mode           model.Mode
	Style          model.Style
	Temperature    float64
	GeminiModel    string
	GeminiBaseURL  string
	GroqModel      string
	GroqBaseURL    string
	RequestTimeout time.Duration

	// CredentialStore holds API keys for this process only.
	CredentialStore *CredentialStore
}

var Debug = false
var DebugLog *log.Logger

// Settings returns the session starting settings derived from the config.
func (c *Config) Settings() model.Settings {
	return model.Settings{
		Selection:   c.Selection,
		Mode:        c.Mode,
		Style:       c.Style,
		Temperature: c.Temperature,
		GeminiModel: c.GeminiModel,
		GroqModel:   c.GroqModel,
	}
}

// BaseURL returns the configured API base URL for a provider ID.
func (c *Config) BaseURL(providerID string) string {
	switch providerID {
	case ProviderGemini:
		return c.GeminiBaseURL
	case ProviderGroq:
		return c.GroqBaseURL
	default:
		return ""
	}
}

func CheckDebug() bool {
	debug := os.Getenv("SIAGA_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	if err := EnsureDir(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create log directory %s: %v\n", dir, err)
		return
	}
	logPath := filepath.Join(dir, "debug.log")

	// 0600: prompts and replies end up in here
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (SIAGA_DEBUG=%s) ===", os.Getenv("SIAGA_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

// Debugf writes to the debug log when debugging is enabled.
func Debugf(format string, args ...any) {
	if Debug && DebugLog != nil {
		DebugLog.Printf(format, args...)
	}
}

// applyEnvOverrides lets SIAGA_* variables win over config.toml.
func (u *UserConfig) applyEnvOverrides() error {
	if v := os.Getenv("SIAGA_PROVIDER"); v != "" {
		u.Provider = v
	}
	if v := os.Getenv("SIAGA_MODE"); v != "" {
		u.Mode = v
	}
	if v := os.Getenv("SIAGA_STYLE"); v != "" {
		u.Style = v
	}
	if v := os.Getenv("SIAGA_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid SIAGA_TEMPERATURE %q: %w", v, err)
		}
		u.Temperature = t
	}
	if v := os.Getenv("SIAGA_GEMINI_MODEL"); v != "" {
		u.Gemini.Model = v
	}
	if v := os.Getenv("SIAGA_GROQ_MODEL"); v != "" {
		u.Groq.Model = v
	}
	return nil
}

// FromUserConfig validates a decoded config file and converts it to a Config.
func FromUserConfig(u *UserConfig) (*Config, error) {
	selection, err := model.ParseSelection(u.Provider)
	if err != nil {
		return nil, err
	}
	mode, err := model.ParseMode(u.Mode)
	if err != nil {
		return nil, err
	}
	style, err := model.ParseStyle(u.Style)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Selection:      selection,
		Mode:           mode,
		Style:          style,
		Temperature:    model.ClampTemperature(u.Temperature),
		GeminiModel:    u.Gemini.Model,
		GeminiBaseURL:  u.Gemini.BaseURL,
		GroqModel:      u.Groq.Model,
		GroqBaseURL:    u.Groq.BaseURL,
		RequestTimeout: time.Duration(u.RequestTimeoutSeconds) * time.Second,
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}
	if cfg.GroqModel == "" {
		cfg.GroqModel = DefaultGroqModel
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	return cfg, nil
}

// Load reads config.toml (creating it from the template on first run),
// applies SIAGA_* overrides and seeds the credential store from the environment.
func Load() (*Config, error) {
	userCfg, err := LoadUserConfig(GetConfigDir())
	if err != nil {
		return nil, err
	}

	if err := userCfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	cfg, err := FromUserConfig(userCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.CredentialStore = NewCredentialStore()
	return cfg, nil
}
