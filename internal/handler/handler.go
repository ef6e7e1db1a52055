package handler

import (
	"context"
	"time"

	"kinogate/internal/domain"
	"kinogate/internal/router"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler translates Telegram updates into router events and router replies into messages
type Handler struct {
	bot     *tele.Bot
	router  *router.Router
	timeout time.Duration
	logger  *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	r *router.Router,
	timeout time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:     bot,
		router:  r,
		timeout: timeout,
		logger:  logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/"+router.CommandStart, h.handleCommand(router.CommandStart))
	h.bot.Handle("/"+router.CommandAdmin, h.handleCommand(router.CommandAdmin))
	h.bot.Handle("/"+router.CommandCancel, h.handleCommand(router.CommandCancel))

	// Messages
	h.bot.Handle(tele.OnText, h.handleMessage)
	h.bot.Handle(tele.OnVideo, h.handleMessage)
	h.bot.Handle(tele.OnDocument, h.handleMessage)

	// Remaining media and stickers, so a pending upload can re-prompt
	h.bot.Handle(tele.OnMedia, h.handleMessage)
	h.bot.Handle(tele.OnSticker, h.handleMessage)

	// All inline buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) handleCommand(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.dispatch(c, domain.Event{
			Kind:   domain.EventCommand,
			UserID: c.Sender().ID,
			Name:   name,
		})
	}
}

// handleMessage handles text and media messages
func (h *Handler) handleMessage(c tele.Context) error {
	ev, ok := eventFromMessage(c.Sender().ID, c.Message())
	if !ok {
		return nil
	}
	return h.dispatch(c, ev)
}

func (h *Handler) dispatch(c tele.Context, ev domain.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	replies := h.router.Route(ctx, ev)
	return h.send(c, replies)
}

// send delivers replies; a button press is always acknowledged
func (h *Handler) send(c tele.Context, replies []domain.Reply) error {
	if c.Callback() != nil {
		resp := &tele.CallbackResponse{}
		if len(replies) > 0 && replies[0].Alert {
			resp.Text = replies[0].Text
			resp.ShowAlert = true
			replies = replies[1:]
		}
		if err := c.Respond(resp); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	for _, r := range replies {
		var err error
		switch {
		case r.IsMedia():
			err = c.Send(sendableFor(*r.Media))
		case len(r.Buttons) > 0:
			err = c.Send(r.Text, markupFor(r.Buttons))
		default:
			err = c.Send(r.Text)
		}
		if err != nil {
			h.logger.Error("Failed to send reply",
				zap.Int64("user_id", c.Sender().ID),
				zap.Bool("media", r.IsMedia()),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}
