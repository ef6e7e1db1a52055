package domain

import "time"

// MediaKind is the type of uploaded media
type MediaKind string

const (
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
)

// Valid reports whether the kind can be re-sent by the bot
func (k MediaKind) Valid() bool {
	return k == MediaVideo || k == MediaDocument
}

// MediaRef is a platform file id that can be re-sent without re-uploading
type MediaRef struct {
	Kind   MediaKind
	FileID string
}

// MediaEntry maps an operator-chosen code to stored media
type MediaEntry struct {
	Code      string
	Media     MediaRef
	CreatedAt time.Time
}
