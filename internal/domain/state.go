package domain

import "time"

// StateKind identifies a pending step of a multi-step conversation
type StateKind string

const (
	StateIdle                  StateKind = "idle"
	StateAwaitingChannelHandle StateKind = "awaiting_channel_handle"
	StateAwaitingMediaCode     StateKind = "awaiting_media_code"
	StateAwaitingMediaUpload   StateKind = "awaiting_media_upload"
)

// ConversationState holds the pending step of a user and its payload
type ConversationState struct {
	Kind      StateKind
	Code      string // chosen media code, set in StateAwaitingMediaUpload
	StartedAt time.Time
}

// Pending reports whether a multi-step flow is in progress
func (s ConversationState) Pending() bool {
	return s.Kind != "" && s.Kind != StateIdle
}
