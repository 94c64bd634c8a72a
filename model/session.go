package model

import (
	"time"

	"github.com/google/uuid"
)

// Session holds everything scoped to one running conversation. It is passed by
// reference into each turn handler; nothing here is written to disk.
type Session struct {
	ID        string
	CreatedAt time.Time
	History   []Message
	Settings  Settings
	LastUsed  LastUsed
}

// NewSession creates an empty session with the given starting settings.
func NewSession(settings Settings) *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Settings:  settings,
	}
}

// Append adds a turn to the history.
func (s *Session) Append(role, content string) {
	s.History = append(s.History, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// Reset empties the history and forgets the last used provider. The session
// gets a new ID, so a reply still in flight for the old conversation is
// recognised as stale. Settings survive a reset.
func (s *Session) Reset() {
	s.ID = uuid.New().String()
	s.History = nil
	s.LastUsed = LastUsed{}
}

// LastAssistant returns the most recent assistant message, if any.
func (s *Session) LastAssistant() (Message, bool) {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleAssistant {
			return s.History[i], true
		}
	}
	return Message{}, false
}
