package provider

import "siaga/config"

// Credentials is the read side of config.CredentialStore.
type Credentials interface {
	Get(providerID string) string
	EnvName(providerID string) string
}

// KeySnapshot is a fixed copy of the routable providers' keys, taken when a
// turn starts. Later saves in the settings panel do not reach a turn that is
// already in flight.
type KeySnapshot struct {
	keys     map[string]string
	envNames map[string]string
}

var routableProviders = []string{config.ProviderGemini, config.ProviderGroq}

// SnapshotCredentials copies the current key and env var name of every
// routable provider out of c.
func SnapshotCredentials(c Credentials) KeySnapshot {
	s := KeySnapshot{
		keys:     make(map[string]string, len(routableProviders)),
		envNames: make(map[string]string, len(routableProviders)),
	}
	for _, id := range routableProviders {
		s.keys[id] = c.Get(id)
		s.envNames[id] = c.EnvName(id)
	}
	return s
}

func (s KeySnapshot) Get(providerID string) string {
	return s.keys[providerID]
}

func (s KeySnapshot) EnvName(providerID string) string {
	return s.envNames[providerID]
}
