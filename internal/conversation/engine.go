package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kinogate/internal/domain"
	"kinogate/internal/ui"

	"go.uber.org/zap"
)

// ChannelRegistry stores required channels
type ChannelRegistry interface {
	Add(ctx context.Context, input string) (string, error)
}

// MediaCatalog stores code-to-media entries
type MediaCatalog interface {
	Exists(ctx context.Context, code string) (bool, error)
	Add(ctx context.Context, code string, ref domain.MediaRef) error
}

// Engine is the per-user state machine behind the operator's multi-step flows.
// States live in memory only and are lost on restart.
// Callers must serialize events of one user, see Locker.
type Engine struct {
	channels ChannelRegistry
	media    MediaCatalog
	logger   *zap.Logger
	ttl      time.Duration
	now      func() time.Time

	mu     sync.Mutex
	states map[int64]domain.ConversationState
}

// NewEngine creates an engine. A pending state older than ttl reads as idle;
// ttl <= 0 keeps states until they complete or are cancelled.
func NewEngine(channels ChannelRegistry, media MediaCatalog, ttl time.Duration, logger *zap.Logger) *Engine {
	return &Engine{
		channels: channels,
		media:    media,
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
		states:   make(map[int64]domain.ConversationState),
	}
}

// State returns user's current state
func (e *Engine) State(userID int64) domain.ConversationState {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, exists := e.states[userID]
	if !exists {
		return domain.ConversationState{Kind: domain.StateIdle}
	}
	if e.ttl > 0 && e.now().Sub(state.StartedAt) > e.ttl {
		delete(e.states, userID)
		e.logger.Info("Pending state expired",
			zap.Int64("user_id", userID),
			zap.String("state", string(state.Kind)),
		)
		return domain.ConversationState{Kind: domain.StateIdle}
	}
	return state
}

// Begin starts a multi-step flow, replacing any pending one, and returns its first prompt
func (e *Engine) Begin(userID int64, kind domain.StateKind) domain.Reply {
	e.set(userID, domain.ConversationState{Kind: kind})

	switch kind {
	case domain.StateAwaitingChannelHandle:
		return domain.TextReply(ui.TextAskChannel, ui.CancelKeyboard()...)
	case domain.StateAwaitingMediaCode:
		return domain.TextReply(ui.TextAskCode, ui.CancelKeyboard()...)
	}
	return domain.TextReply(ui.TextNotUnderstood)
}

// Cancel drops the pending state. It reports whether one existed.
func (e *Engine) Cancel(userID int64) bool {
	pending := e.State(userID).Pending()
	e.reset(userID)
	return pending
}

// Handle consumes an event of a user with a pending state
func (e *Engine) Handle(ctx context.Context, ev domain.Event) []domain.Reply {
	state := e.State(ev.UserID)

	switch state.Kind {
	case domain.StateAwaitingChannelHandle:
		return e.handleChannelHandle(ctx, ev)
	case domain.StateAwaitingMediaCode:
		return e.handleMediaCode(ctx, ev)
	case domain.StateAwaitingMediaUpload:
		return e.handleMediaUpload(ctx, ev, state.Code)
	}
	return nil
}

func (e *Engine) handleChannelHandle(ctx context.Context, ev domain.Event) []domain.Reply {
	// Every outcome ends the flow
	defer e.reset(ev.UserID)

	if ev.Kind != domain.EventText {
		return reply(ui.TextInvalidChannel)
	}

	handle, err := e.channels.Add(ctx, ev.Text)
	switch {
	case err == nil:
		e.logger.Info("Channel added", zap.String("channel", handle))
		return reply(fmt.Sprintf(ui.TextChannelAdded, handle))
	case errors.Is(err, domain.ErrInvalidInput):
		return reply(ui.TextInvalidChannel)
	case errors.Is(err, domain.ErrDuplicateChannel):
		return reply(fmt.Sprintf(ui.TextChannelExists, handle))
	}

	e.logger.Error("Failed to add channel", zap.String("input", ev.Text), zap.Error(err))
	return reply(ui.TextFailure)
}

func (e *Engine) handleMediaCode(ctx context.Context, ev domain.Event) []domain.Reply {
	code := strings.TrimSpace(ev.Text)
	if ev.Kind != domain.EventText || code == "" {
		e.reset(ev.UserID)
		return reply(ui.TextInvalidCode)
	}

	exists, err := e.media.Exists(ctx, code)
	if err != nil {
		e.reset(ev.UserID)
		e.logger.Error("Failed to check media code", zap.String("code", code), zap.Error(err))
		return reply(ui.TextFailure)
	}
	if exists {
		e.reset(ev.UserID)
		return reply(fmt.Sprintf(ui.TextCodeExists, code))
	}

	e.set(ev.UserID, domain.ConversationState{Kind: domain.StateAwaitingMediaUpload, Code: code})
	return []domain.Reply{domain.TextReply(fmt.Sprintf(ui.TextAskMedia, code), ui.CancelKeyboard()...)}
}

// handleMediaUpload keeps the state on wrong input or storage failure so the operator can resend
func (e *Engine) handleMediaUpload(ctx context.Context, ev domain.Event, code string) []domain.Reply {
	retry := []domain.Reply{domain.TextReply(ui.TextMediaOnly, ui.CancelKeyboard()...)}

	if ev.Kind != domain.EventMedia || ev.Media == nil {
		return retry
	}

	err := e.media.Add(ctx, code, *ev.Media)
	switch {
	case err == nil:
		e.reset(ev.UserID)
		e.logger.Info("Media added",
			zap.String("code", code),
			zap.String("kind", string(ev.Media.Kind)),
		)
		return reply(fmt.Sprintf(ui.TextMediaAdded, code))
	case errors.Is(err, domain.ErrDuplicateCode):
		e.reset(ev.UserID)
		return reply(fmt.Sprintf(ui.TextCodeExists, code))
	case errors.Is(err, domain.ErrInvalidInput):
		return retry
	}

	e.logger.Error("Failed to add media", zap.String("code", code), zap.Error(err))
	return []domain.Reply{domain.TextReply(ui.TextFailure, ui.CancelKeyboard()...)}
}

func (e *Engine) set(userID int64, state domain.ConversationState) {
	state.StartedAt = e.now()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.states[userID] = state
}

func (e *Engine) reset(userID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.states, userID)
}

// Sweep drops expired pending states and returns how many were removed
func (e *Engine) Sweep() int {
	if e.ttl <= 0 {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	removed := 0
	for userID, state := range e.states {
		if now.Sub(state.StartedAt) > e.ttl {
			delete(e.states, userID)
			removed++
		}
	}
	return removed
}

func reply(text string) []domain.Reply {
	return []domain.Reply{domain.TextReply(text)}
}
