package domain

// EventKind is the shape of an inbound update
type EventKind string

const (
	EventCommand EventKind = "command"
	EventButton  EventKind = "button"
	EventText    EventKind = "text"
	EventMedia   EventKind = "media"
	// EventOther is any message the bot cannot store or look up (photo, sticker, voice...)
	EventOther EventKind = "other"
)

// Event is an inbound update, already stripped of platform details
type Event struct {
	Kind   EventKind
	UserID int64

	// Name is the command name without slash, or the button tag
	Name string
	// Payload is the extra data attached to a button
	Payload string
	Text    string
	Media   *MediaRef
}

// Button is an inline keyboard button: either a callback (Tag) or a link (URL)
type Button struct {
	Text    string
	Tag     string
	Payload string
	URL     string
}

// Reply is an outbound message. Media replies carry Media, text replies carry Text.
type Reply struct {
	Text    string
	Buttons [][]Button
	// Alert asks the adapter to show the text as a popup when answering a button press
	Alert bool
	Media *MediaRef
}

// TextReply builds a plain text reply
func TextReply(text string, rows ...[]Button) Reply {
	return Reply{Text: text, Buttons: rows}
}

// MediaReply builds a reply that re-sends stored media
func MediaReply(ref MediaRef) Reply {
	return Reply{Media: &ref}
}

// IsMedia reports whether the reply re-sends media
func (r Reply) IsMedia() bool {
	return r.Media != nil
}
