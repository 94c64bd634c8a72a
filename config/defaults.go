package config

import "time"

const (
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultGroqModel      = "meta-llama/llama-4-scout-17b-16e-instruct"
	DefaultTemperature    = 0.4
	DefaultRequestTimeout = 120 * time.Second
)

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Provider:              "auto",
		Mode:                  "now_action",
		Style:                 "casual",
		Temperature:           DefaultTemperature,
		RequestTimeoutSeconds: int(DefaultRequestTimeout / time.Second),
		Gemini: ProviderSection{
			Model: DefaultGeminiModel,
		},
		Groq: ProviderSection{
			Model:   DefaultGroqModel,
			BaseURL: "https://api.groq.com/openai/v1",
		},
	}
}

func GenerateUserConfigTemplate() string {
	return `# siaga configuration
# Location: ~/.config/siaga/config.toml
# This file uses TOML format: https://toml.io
#
# API keys are NOT read from this file. Set GOOGLE_API_KEY (or GEMINI_API_KEY)
# and GROQ_API_KEY in the environment or a .env file, or enter them in the
# settings panel (kept in memory only).

# Provider: "auto" (Gemini first, Groq on failure), "gemini" or "groq"
provider = "auto"

# Mode: "now_action" or "preparedness_plan"
mode = "now_action"

# Style: "formal" (Anda) or "casual" (kamu)
style = "casual"

# Sampling temperature, 0.0 - 1.0
temperature = 0.4

# Seconds before a provider call is abandoned by the HTTP transport
request_timeout_seconds = 120

[gemini]
model = "gemini-2.5-flash"
# base_url = ""

[groq]
model = "meta-llama/llama-4-scout-17b-16e-instruct"
base_url = "https://api.groq.com/openai/v1"
`
}
