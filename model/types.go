package model

import (
	"fmt"
	"strings"
)

// Mode selects the instruction template and the section vocabulary of a turn.
type Mode string

const (
	ModeNowAction        Mode = "now_action"
	ModePreparednessPlan Mode = "preparedness_plan"
)

// ParseMode accepts the config spelling ("now_action") as well as the
// display spelling ("Now Action").
func ParseMode(s string) (Mode, error) {
	switch normalizeEnum(s) {
	case "now_action", "now", "":
		return ModeNowAction, nil
	case "preparedness_plan", "plan", "preparedness":
		return ModePreparednessPlan, nil
	default:
		return "", fmt.Errorf("unknown mode: %q", s)
	}
}

// Next cycles to the other mode (used by the UI toggle).
func (m Mode) Next() Mode {
	if m == ModeNowAction {
		return ModePreparednessPlan
	}
	return ModeNowAction
}

// DisplayName returns the label shown in the status bar and settings.
func (m Mode) DisplayName() string {
	switch m {
	case ModePreparednessPlan:
		return "🧰 Preparedness Plan"
	default:
		return "⚡ Now Action"
	}
}

// Description is the one-line explanation shown under the chat.
func (m Mode) Description() string {
	switch m {
	case ModePreparednessPlan:
		return "Preparedness Plan: go-bag, home prep, rencana evakuasi, dan plan 7 hari."
	default:
		return "Now Action: prioritas, langkah cepat, dan pesan ke keluarga/RT (saat sudah cukup aman membuka HP)."
	}
}

// Selection determines which backend the router uses.
type Selection string

const (
	SelectionAuto      Selection = "auto"
	SelectionProviderA Selection = "gemini"
	SelectionProviderB Selection = "groq"
)

func ParseSelection(s string) (Selection, error) {
	switch normalizeEnum(s) {
	case "auto", "":
		return SelectionAuto, nil
	case "gemini", "google", "provider_a":
		return SelectionProviderA, nil
	case "groq", "provider_b":
		return SelectionProviderB, nil
	default:
		return "", fmt.Errorf("unknown provider selection: %q", s)
	}
}

// Next cycles Auto → Gemini → Groq → Auto.
func (s Selection) Next() Selection {
	switch s {
	case SelectionAuto:
		return SelectionProviderA
	case SelectionProviderA:
		return SelectionProviderB
	default:
		return SelectionAuto
	}
}

func (s Selection) DisplayName() string {
	switch s {
	case SelectionProviderA:
		return "Gemini"
	case SelectionProviderB:
		return "Groq"
	default:
		return "Auto"
	}
}

// Style picks between formal ("Anda") and casual ("kamu") address.
type Style string

const (
	StyleFormal Style = "formal"
	StyleCasual Style = "casual"
)

func ParseStyle(s string) (Style, error) {
	switch normalizeEnum(s) {
	case "formal":
		return StyleFormal, nil
	case "casual", "santai", "":
		return StyleCasual, nil
	default:
		return "", fmt.Errorf("unknown style: %q", s)
	}
}

func (s Style) Next() Style {
	if s == StyleFormal {
		return StyleCasual
	}
	return StyleFormal
}

func (s Style) DisplayName() string {
	if s == StyleFormal {
		return "Formal"
	}
	return "Santai"
}

const (
	MinTemperature  = 0.0
	MaxTemperature  = 1.0
	TemperatureStep = 0.05
)

// ClampTemperature keeps t inside [MinTemperature, MaxTemperature].
func ClampTemperature(t float64) float64 {
	if t < MinTemperature {
		return MinTemperature
	}
	if t > MaxTemperature {
		return MaxTemperature
	}
	return t
}

// Settings are the per-session knobs the user may change before each turn.
type Settings struct {
	Selection   Selection
	Mode        Mode
	Style       Style
	Temperature float64
	GeminiModel string
	GroqModel   string
}

// LastUsed records which backend satisfied the most recent request.
// Informational only.
type LastUsed struct {
	Provider string
	Model    string
}

func (l LastUsed) IsZero() bool {
	return l.Provider == "" && l.Model == ""
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}
