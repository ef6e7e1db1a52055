package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kinogate/internal/conversation"
	"kinogate/internal/domain"
	"kinogate/internal/metrics"
	"kinogate/internal/service"
	"kinogate/internal/ui"

	"go.uber.org/zap"
)

// Command names without the leading slash
const (
	CommandStart  = "start"
	CommandAdmin  = "admin"
	CommandCancel = "cancel"
)

// Router dispatches inbound events to the conversation engine or to stateless handlers
type Router struct {
	users    *service.UserService
	gate     *service.GateService
	media    *service.MediaService
	channels *service.ChannelService
	stats    *service.StatsService
	engine   *conversation.Engine
	locker   *conversation.Locker
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// Deps groups the collaborators of a Router
type Deps struct {
	Users    *service.UserService
	Gate     *service.GateService
	Media    *service.MediaService
	Channels *service.ChannelService
	Stats    *service.StatsService
	Engine   *conversation.Engine
	Locker   *conversation.Locker
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// New creates a router
func New(d Deps) *Router {
	return &Router{
		users:    d.Users,
		gate:     d.Gate,
		media:    d.Media,
		channels: d.Channels,
		stats:    d.Stats,
		engine:   d.Engine,
		locker:   d.Locker,
		metrics:  d.Metrics,
		logger:   d.Logger,
	}
}

// Route handles one event and returns the replies to send.
// Events of the same user are processed one at a time.
func (r *Router) Route(ctx context.Context, ev domain.Event) []domain.Reply {
	unlock := r.locker.Lock(ev.UserID)
	defer unlock()

	r.metrics.IncEvent(string(ev.Kind))

	switch ev.Kind {
	case domain.EventCommand:
		if replies, ok := r.handleCommand(ctx, ev); ok {
			return replies
		}
	case domain.EventButton:
		if replies, ok := r.handleButton(ctx, ev); ok {
			return replies
		}
	}

	if r.engine.State(ev.UserID).Pending() {
		return r.engine.Handle(ctx, ev)
	}

	if ev.Kind == domain.EventText {
		return r.handleCode(ctx, ev)
	}

	return reply(ui.TextNotUnderstood)
}

func (r *Router) handleCommand(ctx context.Context, ev domain.Event) ([]domain.Reply, bool) {
	switch ev.Name {
	case CommandStart:
		return r.handleStart(ctx, ev.UserID), true
	case CommandAdmin:
		if !r.users.IsOperator(ev.UserID) {
			return nil, false
		}
		return []domain.Reply{adminMenu()}, true
	case CommandCancel:
		return r.handleCancel(ev.UserID), true
	}
	return nil, false
}

// handleStart ensures the user record and resets any pending flow
func (r *Router) handleStart(ctx context.Context, userID int64) []domain.Reply {
	if err := r.users.EnsureUser(ctx, userID); err != nil {
		r.logger.Error("Failed to ensure user exists", zap.Int64("user_id", userID), zap.Error(err))
	}
	r.engine.Cancel(userID)

	if r.users.IsOperator(userID) {
		return []domain.Reply{adminMenu()}
	}

	result, err := r.gate.Evaluate(ctx, userID)
	if err != nil {
		r.logger.Error("Failed to evaluate gate", zap.Int64("user_id", userID), zap.Error(err))
		return reply(ui.TextFailure)
	}
	if !result.Satisfied() {
		return []domain.Reply{subscribePrompt(ui.TextSubscribe, result.Missing)}
	}
	return reply(ui.TextSendCode)
}

func (r *Router) handleCancel(userID int64) []domain.Reply {
	if !r.engine.Cancel(userID) {
		return reply(ui.TextNothingToCancel)
	}
	if r.users.IsOperator(userID) {
		return []domain.Reply{domain.TextReply(ui.TextCancelled, ui.AdminMenu()...)}
	}
	return reply(ui.TextCancelled)
}

func (r *Router) handleButton(ctx context.Context, ev domain.Event) ([]domain.Reply, bool) {
	if ev.Name == ui.TagCheckSub {
		return r.handleCheckSub(ctx, ev.UserID), true
	}
	if ev.Name == ui.TagCancel {
		return r.handleCancel(ev.UserID), true
	}

	// Remaining buttons belong to the admin menu
	if !r.users.IsOperator(ev.UserID) {
		r.logger.Warn("Admin button pressed by non-operator",
			zap.Int64("user_id", ev.UserID),
			zap.String("tag", ev.Name),
		)
		return nil, false
	}

	switch ev.Name {
	case ui.TagAdminMenu:
		return []domain.Reply{adminMenu()}, true
	case ui.TagAddChannel:
		return []domain.Reply{r.engine.Begin(ev.UserID, domain.StateAwaitingChannelHandle)}, true
	case ui.TagAddMedia:
		return []domain.Reply{r.engine.Begin(ev.UserID, domain.StateAwaitingMediaCode)}, true
	case ui.TagListChannels:
		return r.handleListChannels(ctx), true
	case ui.TagRemoveChannel:
		return r.handleRemoveChannel(ctx, ev.Payload), true
	case ui.TagStats:
		return r.handleStats(ctx), true
	}
	return nil, false
}

func (r *Router) handleCheckSub(ctx context.Context, userID int64) []domain.Reply {
	result, err := r.gate.Evaluate(ctx, userID)
	if err != nil {
		r.logger.Error("Failed to evaluate gate", zap.Int64("user_id", userID), zap.Error(err))
		return []domain.Reply{{Text: ui.TextFailure, Alert: true}}
	}
	if !result.Satisfied() {
		return []domain.Reply{{Text: ui.TextNotSubscribed, Alert: true}}
	}
	return reply(ui.TextSubscriptionOK)
}

func (r *Router) handleListChannels(ctx context.Context) []domain.Reply {
	channels, err := r.channels.List(ctx)
	if err != nil {
		r.logger.Error("Failed to list channels", zap.Error(err))
		return reply(ui.TextFailure)
	}
	if len(channels) == 0 {
		return []domain.Reply{adminMenuWith(ui.TextNoChannels)}
	}

	var b strings.Builder
	b.WriteString(ui.TextChannelsHeader)
	for i, ch := range channels {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ch.Handle)
	}
	return []domain.Reply{domain.TextReply(b.String(), ui.ChannelListKeyboard(channels)...)}
}

func (r *Router) handleRemoveChannel(ctx context.Context, handle string) []domain.Reply {
	removed, err := r.channels.Remove(ctx, handle)
	switch {
	case err == nil:
		r.logger.Info("Channel removed", zap.String("channel", removed))
		return []domain.Reply{adminMenuWith(fmt.Sprintf(ui.TextChannelRemoved, removed))}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
		return []domain.Reply{adminMenuWith(fmt.Sprintf(ui.TextChannelMissing, handle))}
	}

	r.logger.Error("Failed to remove channel", zap.String("channel", handle), zap.Error(err))
	return reply(ui.TextFailure)
}

func (r *Router) handleStats(ctx context.Context) []domain.Reply {
	stats, err := r.stats.Collect(ctx)
	if err != nil {
		r.logger.Error("Failed to collect stats", zap.Error(err))
		return reply(ui.TextFailure)
	}
	return []domain.Reply{adminMenuWith(fmt.Sprintf(ui.TextStats, stats.Media, stats.Channels, stats.Users))}
}

// handleCode serves media by code once the gate is satisfied
func (r *Router) handleCode(ctx context.Context, ev domain.Event) []domain.Reply {
	result, err := r.gate.Evaluate(ctx, ev.UserID)
	if err != nil {
		r.metrics.IncMediaLookup("error")
		r.logger.Error("Failed to evaluate gate", zap.Int64("user_id", ev.UserID), zap.Error(err))
		return reply(ui.TextFailure)
	}
	if !result.Satisfied() {
		r.metrics.IncMediaLookup("gated")
		return []domain.Reply{subscribePrompt(ui.TextSubscribeFirst, result.Missing)}
	}

	ref, err := r.media.Lookup(ctx, ev.Text)
	if errors.Is(err, domain.ErrNotFound) {
		r.metrics.IncMediaLookup("miss")
		return reply(ui.TextMediaNotFound)
	}
	if err != nil {
		r.metrics.IncMediaLookup("error")
		r.logger.Error("Failed to look up media", zap.String("code", ev.Text), zap.Error(err))
		return reply(ui.TextFailure)
	}

	r.metrics.IncMediaLookup("hit")
	return []domain.Reply{domain.MediaReply(ref)}
}

func adminMenu() domain.Reply {
	return adminMenuWith(ui.TextAdminPanel)
}

func adminMenuWith(text string) domain.Reply {
	return domain.TextReply(text, ui.AdminMenu()...)
}

func subscribePrompt(text string, missing []domain.Channel) domain.Reply {
	return domain.TextReply(text, ui.SubscribeKeyboard(missing)...)
}

func reply(text string) []domain.Reply {
	return []domain.Reply{domain.TextReply(text)}
}
