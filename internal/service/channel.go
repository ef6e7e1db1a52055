package service

import (
	"context"

	"kinogate/internal/domain"
	"kinogate/internal/metrics"
	"kinogate/internal/repository"
)

// ChannelService manages the required-channel set
type ChannelService struct {
	channelRepo repository.ChannelRepository
	metrics     *metrics.Metrics
}

// NewChannelService creates a new channel service
func NewChannelService(channelRepo repository.ChannelRepository, m *metrics.Metrics) *ChannelService {
	return &ChannelService{channelRepo: channelRepo, metrics: m}
}

// Add normalizes input into a handle and stores it. It returns the stored handle.
func (s *ChannelService) Add(ctx context.Context, input string) (string, error) {
	handle, err := domain.NormalizeHandle(input)
	if err != nil {
		return "", err
	}

	if err := s.channelRepo.AddChannel(ctx, handle); err != nil {
		return handle, err
	}
	s.metrics.IncChannelAdded()
	return handle, nil
}

// Remove deletes a channel; input is normalized the same way as in Add
func (s *ChannelService) Remove(ctx context.Context, input string) (string, error) {
	handle, err := domain.NormalizeHandle(input)
	if err != nil {
		return "", err
	}
	return handle, s.channelRepo.RemoveChannel(ctx, handle)
}

// List returns all required channels
func (s *ChannelService) List(ctx context.Context) ([]domain.Channel, error) {
	return s.channelRepo.ListChannels(ctx)
}
