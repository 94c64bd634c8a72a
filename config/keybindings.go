package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeyBindingsConfig holds the modifier and optional per-action overrides
type KeyBindingsConfig struct {
	Modifiers ModifierConfig    `toml:"modifiers"`
	Actions   map[string]string `toml:"actions"`
}

type ModifierConfig struct {
	Primary string `toml:"primary"` // "ctrl", "alt"
}

type actionDef struct {
	modifier string // "primary" or "none"
	key      string
}

// actionRegistry maps action names to their default keybindings.
// Any of these can be overridden in the [actions] section of keybindings.toml.
var actionRegistry = map[string]actionDef{
	// Chat view
	"send":           {"none", "enter"},
	"settings":       {"primary", "s"},
	"clear_chat":     {"primary", "l"},
	"copy_quick":     {"primary", "y"},
	"cycle_provider": {"primary", "p"},
	"cycle_mode":     {"primary", "o"},
	"help":           {"none", "f1"},
	"about":          {"none", "f2"},
	"quit":           {"primary", "c"},

	// Scrolling
	"scroll_up":   {"none", "pgup"},
	"scroll_down": {"none", "pgdown"},

	// Settings panel
	"settings_next": {"none", "tab"},
	"settings_prev": {"none", "shift+tab"},
	"settings_save": {"primary", "s"},
	"test_keys":     {"primary", "t"},
	"close":         {"none", "esc"},
}

// DefaultKeybindings returns default configuration
func DefaultKeybindings() *KeyBindingsConfig {
	return &KeyBindingsConfig{
		Modifiers: ModifierConfig{Primary: "ctrl"},
	}
}

func keybindingsPath(configDir string) string {
	return filepath.Join(configDir, "keybindings.toml")
}

// LoadKeybindings loads keybindings.toml from the config directory,
// writing the template on first run.
func LoadKeybindings(configDir string) (*KeyBindingsConfig, error) {
	cfg := DefaultKeybindings()
	path := keybindingsPath(configDir)

	if !FileExists(path) {
		if err := CreateDefaultKeybindings(configDir); err != nil {
			return nil, fmt.Errorf("failed to create keybindings: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse keybindings: %w", err)
	}
	if cfg.Modifiers.Primary == "" {
		cfg.Modifiers.Primary = "ctrl"
	}

	if ok, msg := cfg.Validate(); !ok {
		return nil, fmt.Errorf("invalid keybindings: %s", msg)
	}
	return cfg, nil
}

// CreateDefaultKeybindings creates default keybindings.toml
func CreateDefaultKeybindings(configDir string) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := keybindingsPath(configDir)
	if FileExists(path) {
		return nil
	}

	if err := os.WriteFile(path, []byte(GenerateKeybindingsTemplate()), 0600); err != nil {
		return fmt.Errorf("failed to write keybindings: %w", err)
	}
	return nil
}

// GenerateKeybindingsTemplate returns the default TOML template
func GenerateKeybindingsTemplate() string {
	return `# Siaga keybindings
# Location: ~/.config/siaga/keybindings.toml

[modifiers]
primary = "ctrl"   # Options: ctrl, alt

[actions]
# Override single actions here. Available actions:
#   send, settings, clear_chat, copy_quick, cycle_provider, cycle_mode,
#   help, about, quit, scroll_up, scroll_down, settings_next, settings_prev,
#   settings_save, test_keys, close
#
# Examples:
#   clear_chat = "alt+l"
#   copy_quick = "ctrl+k"
`
}

// Primary returns the primary modifier
func (kb *KeyBindingsConfig) Primary() string {
	if kb.Modifiers.Primary == "" {
		return "ctrl"
	}
	return kb.Modifiers.Primary
}

// GetActionKey returns the keybinding for an action, honouring user overrides.
// Example: GetActionKey("clear_chat") returns "ctrl+l".
func (kb *KeyBindingsConfig) GetActionKey(action string) string {
	if override, ok := kb.Actions[action]; ok && override != "" {
		return strings.ToLower(override)
	}

	def, ok := actionRegistry[action]
	if !ok {
		return ""
	}
	if def.modifier == "primary" {
		return kb.Primary() + "+" + def.key
	}
	return def.key
}

// Matches reports whether a bubbletea key string triggers the action.
func (kb *KeyBindingsConfig) Matches(action, key string) bool {
	want := kb.GetActionKey(action)
	return want != "" && want == key
}

// DisplayActionKey returns a display-friendly keybinding.
// Example: "ctrl+shift+j" -> "Ctrl+Shift+J"
func (kb *KeyBindingsConfig) DisplayActionKey(action string) string {
	key := kb.GetActionKey(action)
	if key == "" {
		return ""
	}

	parts := strings.Split(key, "+")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "+")
}

// Validate checks the modifier choice.
func (kb *KeyBindingsConfig) Validate() (bool, string) {
	switch kb.Primary() {
	case "ctrl", "alt":
		return true, ""
	case "shift":
		return false, "Shift alone conflicts with typing"
	default:
		return false, fmt.Sprintf("unsupported modifier %q (use ctrl or alt)", kb.Primary())
	}
}
