package repository

import (
	"context"

	"kinogate/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	CountUsers(ctx context.Context) (int, error)
}

// ChannelRepository defines required-channel data operations.
// AddChannel fails with domain.ErrDuplicateChannel, RemoveChannel with domain.ErrNotFound.
type ChannelRepository interface {
	AddChannel(ctx context.Context, handle string) error
	RemoveChannel(ctx context.Context, handle string) error
	ListChannels(ctx context.Context) ([]domain.Channel, error)
}

// MediaRepository defines code-to-media data operations.
// AddMedia fails with domain.ErrDuplicateCode, GetMedia with domain.ErrNotFound.
type MediaRepository interface {
	AddMedia(ctx context.Context, entry domain.MediaEntry) error
	GetMedia(ctx context.Context, code string) (*domain.MediaEntry, error)
	CountMedia(ctx context.Context) (int, error)
}

// Store bundles all repositories of one backend
type Store interface {
	UserRepository
	ChannelRepository
	MediaRepository
}
