package ui

import (
	"siaga/model"
	"siaga/provider"
)

// Message type aliases - these are defined in the model and provider packages
type turnCompleteMsg = model.TurnCompleteMsg
type clipboardCopiedMsg = model.ClipboardCopiedMsg
type flashTickMsg = model.FlashTickMsg
type pingProviderMsg = provider.PingProviderMsg
