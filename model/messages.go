package model

import "time"

// TurnResult is the outcome of one routed turn. Reply is always set: on
// failure it holds the explanatory assistant message instead of a model reply.
type TurnResult struct {
	Reply    string
	Provider string // display name of the backend that answered, empty on failure
	Model    string
	Err      error
	Elapsed  time.Duration
}

// OK reports whether a provider produced the reply.
func (r TurnResult) OK() bool {
	return r.Err == nil
}

type TurnCompleteMsg struct {
	SessionID string
	Result    TurnResult
}

type ClipboardCopiedMsg struct {
	What string // "quick message" or "reply"
	Err  error
}

type FlashTickMsg struct{}
