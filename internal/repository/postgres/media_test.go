package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"kinogate/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMediaRepo_AddMedia(t *testing.T) {
	tests := []struct {
		name        string
		mockError   error
		expectedErr error
	}{
		{
			name: "new code",
		},
		{
			name:        "duplicate code",
			mockError:   &pq.Error{Code: "23505"},
			expectedErr: domain.ErrDuplicateCode,
		},
		{
			name:        "other constraint error",
			mockError:   &pq.Error{Code: "23502"},
			expectedErr: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewMediaRepo(db)
			entry := domain.MediaEntry{
				Code:  "A1",
				Media: domain.MediaRef{Kind: domain.MediaVideo, FileID: "REF-A1"},
			}

			expect := mock.ExpectExec("INSERT INTO media").WithArgs("A1", "video", "REF-A1")
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err = repo.AddMedia(context.Background(), entry)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMediaRepo_GetMedia(t *testing.T) {
	createdAt := time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		code          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedEntry *domain.MediaEntry
		expectedErr   error
	}{
		{
			name: "code found",
			code: "A1",
			mockRows: sqlmock.NewRows([]string{"code", "kind", "file_id", "created_at"}).
				AddRow("A1", "document", "REF-A1", createdAt),
			expectedEntry: &domain.MediaEntry{
				Code:      "A1",
				Media:     domain.MediaRef{Kind: domain.MediaDocument, FileID: "REF-A1"},
				CreatedAt: createdAt,
			},
		},
		{
			name:        "code missing",
			code:        "B2",
			mockError:   sql.ErrNoRows,
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "database error",
			code:        "B2",
			mockError:   fmt.Errorf("db error"),
			expectedErr: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewMediaRepo(db)

			query := "SELECT code, kind, file_id, created_at FROM media WHERE code = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.code).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.code).WillReturnRows(tt.mockRows)
			}

			entry, err := repo.GetMedia(context.Background(), tt.code)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEntry, entry)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMediaRepo_CountMedia(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMediaRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM media").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountMedia(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
