// Package memory keeps all records in process memory. It backs local runs
// (STORAGE_DRIVER=memory) and the router tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"kinogate/internal/domain"
)

// Store implements repository.Store with mutex-guarded maps
type Store struct {
	mu       sync.RWMutex
	users    map[int64]domain.User
	channels map[string]struct{}
	media    map[string]domain.MediaEntry
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.User),
		channels: make(map[string]struct{}),
		media:    make(map[string]domain.MediaEntry),
		now:      time.Now,
	}
}

// EnsureUser creates the user record unless one already exists
func (s *Store) EnsureUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; ok {
		return nil
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	s.users[user.UserID] = user
	return nil
}

// GetUser returns the user record or domain.ErrNotFound
func (s *Store) GetUser(_ context.Context, userID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// CountUsers returns the number of known users
func (s *Store) CountUsers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// AddChannel adds a required channel, domain.ErrDuplicateChannel if present
func (s *Store) AddChannel(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.channels[handle]; ok {
		return domain.ErrDuplicateChannel
	}
	s.channels[handle] = struct{}{}
	return nil
}

// RemoveChannel removes a required channel, domain.ErrNotFound if absent
func (s *Store) RemoveChannel(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.channels[handle]; !ok {
		return domain.ErrNotFound
	}
	delete(s.channels, handle)
	return nil
}

// ListChannels returns channels sorted by handle
func (s *Store) ListChannels(_ context.Context) ([]domain.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var channels []domain.Channel
	for handle := range s.channels {
		channels = append(channels, domain.Channel{Handle: handle})
	}
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].Handle < channels[j].Handle
	})
	return channels, nil
}

// AddMedia stores a new entry, domain.ErrDuplicateCode if the code is taken
func (s *Store) AddMedia(_ context.Context, entry domain.MediaEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.media[entry.Code]; ok {
		return domain.ErrDuplicateCode
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.media[entry.Code] = entry
	return nil
}

// GetMedia returns the entry for code or domain.ErrNotFound
func (s *Store) GetMedia(_ context.Context, code string) (*domain.MediaEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.media[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

// CountMedia returns the number of stored entries
func (s *Store) CountMedia(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.media), nil
}
