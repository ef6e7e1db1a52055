package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kinogate/internal/domain"
	"kinogate/internal/metrics"
	"kinogate/internal/repository"
)

// MediaService resolves codes to stored media and stores new entries
type MediaService struct {
	mediaRepo repository.MediaRepository
	metrics   *metrics.Metrics
}

// NewMediaService creates a new media service
func NewMediaService(mediaRepo repository.MediaRepository, m *metrics.Metrics) *MediaService {
	return &MediaService{mediaRepo: mediaRepo, metrics: m}
}

// Lookup returns the media stored under the exact code, or domain.ErrNotFound
func (s *MediaService) Lookup(ctx context.Context, code string) (domain.MediaRef, error) {
	entry, err := s.mediaRepo.GetMedia(ctx, code)
	if err != nil {
		return domain.MediaRef{}, err
	}
	return entry.Media, nil
}

// Exists reports whether code is already taken
func (s *MediaService) Exists(ctx context.Context, code string) (bool, error) {
	_, err := s.mediaRepo.GetMedia(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add stores a new code-to-media entry. A taken code fails with domain.ErrDuplicateCode.
func (s *MediaService) Add(ctx context.Context, code string, ref domain.MediaRef) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("%w: empty code", domain.ErrInvalidInput)
	}
	if ref.FileID == "" || !ref.Kind.Valid() {
		return fmt.Errorf("%w: media must be a video or file", domain.ErrInvalidInput)
	}

	if err := s.mediaRepo.AddMedia(ctx, domain.MediaEntry{Code: code, Media: ref}); err != nil {
		return err
	}
	s.metrics.IncMediaAdded()
	return nil
}
