package postgres

import (
	"context"
	"database/sql"
	"errors"

	"kinogate/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates user if not exists. An existing row is left untouched.
func (r *UserRepo) EnsureUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, user.UserID, string(user.Role)); err != nil {
		return storageError("ensure user", err)
	}
	return nil
}

// GetUser returns the user or domain.ErrNotFound
func (r *UserRepo) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var u domain.User
	var role string
	query := `SELECT user_id, role, created_at FROM users WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&u.UserID, &role, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get user", err)
	}

	u.Role = domain.Role(role)
	return &u, nil
}

// CountUsers returns the number of known users
func (r *UserRepo) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, storageError("count users", err)
	}
	return count, nil
}
