package handler

import (
	"strings"
	"unicode"

	"kinogate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseCallback extracts the button tag and payload.
// Buttons without a dedicated handler arrive with raw "\f<tag>|<payload>" data and no Unique.
func parseCallback(cb *tele.Callback) (tag, payload string) {
	if cb.Unique != "" {
		return cb.Unique, cleanCallbackData(cb.Data)
	}

	data := cleanCallbackData(cb.Data)
	tag, payload, _ = strings.Cut(data, "|")
	return tag, payload
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	tag, payload := parseCallback(callback)
	h.logger.Debug("Processing callback",
		zap.String("tag", tag),
		zap.String("payload", payload),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	if tag == "" {
		return c.Respond()
	}

	return h.dispatch(c, domain.Event{
		Kind:    domain.EventButton,
		UserID:  c.Sender().ID,
		Name:    tag,
		Payload: payload,
	})
}
