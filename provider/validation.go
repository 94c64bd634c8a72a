package provider

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"siaga/config"
)

// PingProviderMsg is sent when provider ping completes
type PingProviderMsg struct {
	ProviderID string
	Valid      bool
	Err        error
}

const pingTimeout = 20 * time.Second

// PingProvider validates a provider's key by calling Ping().
// Used by the settings panel "test keys" action.
func PingProvider(providerID, baseURL, apiKey, modelID string) tea.Cmd {
	return func() tea.Msg {
		p, err := NewProvider(Config{
			Type:    MapProviderIDToType(providerID),
			BaseURL: baseURL,
			APIKey:  apiKey,
			Model:   modelID,
			Timeout: pingTimeout,
		})
		if err != nil {
			return PingProviderMsg{
				ProviderID: providerID,
				Valid:      false,
				Err:        fmt.Errorf("failed to create provider: %w", err),
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			return PingProviderMsg{
				ProviderID: providerID,
				Valid:      false,
				Err:        fmt.Errorf("connection failed: %w", err),
			}
		}

		config.Debugf("[Provider] Provider %s ping successful", providerID)

		return PingProviderMsg{
			ProviderID: providerID,
			Valid:      true,
		}
	}
}
