package service

import (
	"context"
	"fmt"

	"kinogate/internal/domain"
	"kinogate/internal/metrics"
	"kinogate/internal/repository"

	"go.uber.org/zap"
)

// MembershipOracle reports a user's status in a channel.
// An error means the status is unknown.
type MembershipOracle interface {
	Membership(ctx context.Context, handle string, userID int64) (domain.MembershipStatus, error)
}

// GateResult is the outcome of a subscription check
type GateResult struct {
	Missing []domain.Channel
}

// Satisfied reports whether the user is subscribed to every required channel
func (r GateResult) Satisfied() bool {
	return len(r.Missing) == 0
}

// GateService decides whether a user may receive content
type GateService struct {
	channelRepo repository.ChannelRepository
	oracle      MembershipOracle
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewGateService creates a new gate service
func NewGateService(
	channelRepo repository.ChannelRepository,
	oracle MembershipOracle,
	m *metrics.Metrics,
	logger *zap.Logger,
) *GateService {
	return &GateService{
		channelRepo: channelRepo,
		oracle:      oracle,
		metrics:     m,
		logger:      logger,
	}
}

// Evaluate checks every required channel and collects the ones the user is missing.
// Oracle failures count as not subscribed. Results are never cached.
func (s *GateService) Evaluate(ctx context.Context, userID int64) (GateResult, error) {
	channels, err := s.channelRepo.ListChannels(ctx)
	if err != nil {
		return GateResult{}, fmt.Errorf("list channels: %w", err)
	}

	var result GateResult
	for _, ch := range channels {
		status, err := s.oracle.Membership(ctx, ch.Handle, userID)
		if err != nil {
			s.metrics.IncOracleError()
			s.logger.Warn("Membership lookup failed, treating as not subscribed",
				zap.Int64("user_id", userID),
				zap.String("channel", ch.Handle),
				zap.Error(err),
			)
			status = domain.StatusUnknown
		}

		if !status.Subscribed() {
			result.Missing = append(result.Missing, ch)
		}
	}

	s.metrics.IncGateCheck(result.Satisfied())
	return result, nil
}
