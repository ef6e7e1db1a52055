package postgres

import (
	"context"
	"database/sql"

	"kinogate/internal/domain"
)

// ChannelRepo implements repository.ChannelRepository
type ChannelRepo struct {
	db *sql.DB
}

// NewChannelRepo creates a new channel repository
func NewChannelRepo(db *sql.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

// AddChannel inserts a required channel
func (r *ChannelRepo) AddChannel(ctx context.Context, handle string) error {
	query := `INSERT INTO channels (handle) VALUES ($1)`
	_, err := r.db.ExecContext(ctx, query, handle)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateChannel
	}
	if err != nil {
		return storageError("add channel", err)
	}
	return nil
}

// RemoveChannel deletes a required channel
func (r *ChannelRepo) RemoveChannel(ctx context.Context, handle string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM channels WHERE handle = $1`, handle)
	if err != nil {
		return storageError("remove channel", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageError("remove channel", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListChannels returns all required channels ordered by handle
func (r *ChannelRepo) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT handle FROM channels ORDER BY handle`)
	if err != nil {
		return nil, storageError("list channels", err)
	}
	defer rows.Close()

	var channels []domain.Channel
	for rows.Next() {
		var c domain.Channel
		if err := rows.Scan(&c.Handle); err != nil {
			return nil, storageError("list channels", err)
		}
		channels = append(channels, c)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("list channels", err)
	}
	return channels, nil
}
