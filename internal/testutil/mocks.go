package testutil

import (
	"context"

	"kinogate/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockChannelRepository is a mock for ChannelRepository
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) AddChannel(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

func (m *MockChannelRepository) RemoveChannel(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

func (m *MockChannelRepository) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Channel), args.Error(1)
}

// MockMediaRepository is a mock for MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) AddMedia(ctx context.Context, entry domain.MediaEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMediaRepository) GetMedia(ctx context.Context, code string) (*domain.MediaEntry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaEntry), args.Error(1)
}

func (m *MockMediaRepository) CountMedia(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockStore combines the repository mocks into a repository.Store
type MockStore struct {
	Users    *MockUserRepository
	Channels *MockChannelRepository
	Media    *MockMediaRepository
}

// NewMockStore creates a store with fresh repository mocks
func NewMockStore() *MockStore {
	return &MockStore{
		Users:    new(MockUserRepository),
		Channels: new(MockChannelRepository),
		Media:    new(MockMediaRepository),
	}
}

func (s *MockStore) EnsureUser(ctx context.Context, user domain.User) error {
	return s.Users.EnsureUser(ctx, user)
}

func (s *MockStore) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.Users.GetUser(ctx, userID)
}

func (s *MockStore) CountUsers(ctx context.Context) (int, error) {
	return s.Users.CountUsers(ctx)
}

func (s *MockStore) AddChannel(ctx context.Context, handle string) error {
	return s.Channels.AddChannel(ctx, handle)
}

func (s *MockStore) RemoveChannel(ctx context.Context, handle string) error {
	return s.Channels.RemoveChannel(ctx, handle)
}

func (s *MockStore) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	return s.Channels.ListChannels(ctx)
}

func (s *MockStore) AddMedia(ctx context.Context, entry domain.MediaEntry) error {
	return s.Media.AddMedia(ctx, entry)
}

func (s *MockStore) GetMedia(ctx context.Context, code string) (*domain.MediaEntry, error) {
	return s.Media.GetMedia(ctx, code)
}

func (s *MockStore) CountMedia(ctx context.Context) (int, error) {
	return s.Media.CountMedia(ctx)
}

// MockOracle is a mock for the membership oracle
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) Membership(ctx context.Context, handle string, userID int64) (domain.MembershipStatus, error) {
	args := m.Called(ctx, handle, userID)
	return args.Get(0).(domain.MembershipStatus), args.Error(1)
}
