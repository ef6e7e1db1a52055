package testutil

import (
	"context"
	"sync"

	"kinogate/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestChannels builds a channel list from handles
func NewTestChannels(handles ...string) []domain.Channel {
	channels := make([]domain.Channel, 0, len(handles))
	for _, h := range handles {
		channels = append(channels, domain.Channel{Handle: h})
	}
	return channels
}

// FakeOracle answers membership questions from a fixed table.
// Channels listed in Errors fail with domain.ErrOracleUnavailable.
type FakeOracle struct {
	mu       sync.Mutex
	statuses map[string]map[int64]domain.MembershipStatus
	errors   map[string]bool
	calls    int
}

// NewFakeOracle creates an oracle where everybody has left every channel
func NewFakeOracle() *FakeOracle {
	return &FakeOracle{
		statuses: make(map[string]map[int64]domain.MembershipStatus),
		errors:   make(map[string]bool),
	}
}

// Set records the status of userID in handle
func (o *FakeOracle) Set(handle string, userID int64, status domain.MembershipStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.statuses[handle] == nil {
		o.statuses[handle] = make(map[int64]domain.MembershipStatus)
	}
	o.statuses[handle][userID] = status
}

// Fail makes every lookup for handle return an error
func (o *FakeOracle) Fail(handle string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errors[handle] = true
}

// Calls returns the number of lookups made
func (o *FakeOracle) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

// Membership implements service.MembershipOracle
func (o *FakeOracle) Membership(_ context.Context, handle string, userID int64) (domain.MembershipStatus, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++

	if o.errors[handle] {
		return domain.StatusUnknown, domain.ErrOracleUnavailable
	}
	status, ok := o.statuses[handle][userID]
	if !ok {
		return domain.StatusLeft, nil
	}
	return status, nil
}
