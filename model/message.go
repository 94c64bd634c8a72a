package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message represents a chat message in the conversation
type Message struct {
	Role      string
	Content   string // Raw reply text, the only stored form
	Rendered  string // Cached terminal rendering, recomputed from Content
	Timestamp time.Time
}
