package handler

import (
	"strings"

	"kinogate/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// eventFromMessage maps a message onto an event. Content other than text, video
// or document becomes EventOther; only a nil message is reported as not ok.
func eventFromMessage(userID int64, msg *tele.Message) (domain.Event, bool) {
	if msg == nil {
		return domain.Event{}, false
	}

	switch {
	case msg.Animation != nil:
		// Animations also carry Document
		return domain.Event{Kind: domain.EventOther, UserID: userID}, true
	case msg.Video != nil:
		return domain.Event{
			Kind:   domain.EventMedia,
			UserID: userID,
			Media:  &domain.MediaRef{Kind: domain.MediaVideo, FileID: msg.Video.FileID},
		}, true
	case msg.Document != nil:
		return domain.Event{
			Kind:   domain.EventMedia,
			UserID: userID,
			Media:  &domain.MediaRef{Kind: domain.MediaDocument, FileID: msg.Document.FileID},
		}, true
	case strings.HasPrefix(msg.Text, "/"):
		// Unregistered command, e.g. /help or /start@otherbot
		name := strings.TrimPrefix(strings.Fields(msg.Text)[0], "/")
		if i := strings.Index(name, "@"); i >= 0 {
			name = name[:i]
		}
		return domain.Event{Kind: domain.EventCommand, UserID: userID, Name: name}, true
	case msg.Text != "":
		return domain.Event{Kind: domain.EventText, UserID: userID, Text: msg.Text}, true
	}
	return domain.Event{Kind: domain.EventOther, UserID: userID}, true
}

// sendableFor re-sends stored media by file id
func sendableFor(ref domain.MediaRef) tele.Sendable {
	if ref.Kind == domain.MediaDocument {
		return &tele.Document{File: tele.File{FileID: ref.FileID}}
	}
	return &tele.Video{File: tele.File{FileID: ref.FileID}}
}

// markupFor builds an inline keyboard
func markupFor(rows [][]domain.Button) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	teleRows := make([]tele.Row, 0, len(rows))

	for _, row := range rows {
		btns := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			switch {
			case b.URL != "":
				btns = append(btns, markup.URL(b.Text, b.URL))
			case b.Payload != "":
				btns = append(btns, markup.Data(b.Text, b.Tag, b.Payload))
			default:
				btns = append(btns, markup.Data(b.Text, b.Tag))
			}
		}
		teleRows = append(teleRows, markup.Row(btns...))
	}

	markup.Inline(teleRows...)
	return markup
}
