package service

import (
	"context"
	"fmt"

	"kinogate/internal/domain"
	"kinogate/internal/repository"

	"go.uber.org/zap"
)

// StatsService collects the operator overview
type StatsService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(store repository.Store, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
	}
}

// Collect counts media entries, channels and users
func (s *StatsService) Collect(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	var err error

	if stats.Media, err = s.store.CountMedia(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("count media: %w", err)
	}

	channels, err := s.store.ListChannels(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("list channels: %w", err)
	}
	stats.Channels = len(channels)

	if stats.Users, err = s.store.CountUsers(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("count users: %w", err)
	}

	s.logger.Debug("Stats collected",
		zap.Int("media", stats.Media),
		zap.Int("channels", stats.Channels),
		zap.Int("users", stats.Users),
	)
	return stats, nil
}
