package postgres

import (
	"context"
	"database/sql"
	"errors"

	"kinogate/internal/domain"
)

// MediaRepo implements repository.MediaRepository
type MediaRepo struct {
	db *sql.DB
}

// NewMediaRepo creates a new media repository
func NewMediaRepo(db *sql.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

// AddMedia stores a code-to-media entry; codes are unique
func (r *MediaRepo) AddMedia(ctx context.Context, entry domain.MediaEntry) error {
	query := `
		INSERT INTO media (code, kind, file_id)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, entry.Code, string(entry.Media.Kind), entry.Media.FileID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateCode
	}
	if err != nil {
		return storageError("add media", err)
	}
	return nil
}

// GetMedia returns the entry stored under the exact code
func (r *MediaRepo) GetMedia(ctx context.Context, code string) (*domain.MediaEntry, error) {
	var e domain.MediaEntry
	var kind string
	query := `SELECT code, kind, file_id, created_at FROM media WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&e.Code, &kind, &e.Media.FileID, &e.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get media", err)
	}

	e.Media.Kind = domain.MediaKind(kind)
	return &e, nil
}

// CountMedia returns the number of stored entries
func (r *MediaRepo) CountMedia(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media`).Scan(&count); err != nil {
		return 0, storageError("count media", err)
	}
	return count, nil
}
