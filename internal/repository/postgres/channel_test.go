package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"kinogate/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestChannelRepo_AddChannel(t *testing.T) {
	tests := []struct {
		name        string
		mockError   error
		expectedErr error
	}{
		{
			name: "new channel",
		},
		{
			name:        "duplicate channel",
			mockError:   &pq.Error{Code: "23505"},
			expectedErr: domain.ErrDuplicateChannel,
		},
		{
			name:        "database error",
			mockError:   fmt.Errorf("db error"),
			expectedErr: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewChannelRepo(db)

			expect := mock.ExpectExec("INSERT INTO channels").WithArgs("@moviechannel")
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err = repo.AddChannel(context.Background(), "@moviechannel")

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChannelRepo_RemoveChannel(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{
			name:         "existing channel",
			rowsAffected: 1,
		},
		{
			name:         "missing channel",
			rowsAffected: 0,
			expectedErr:  domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewChannelRepo(db)

			mock.ExpectExec("DELETE FROM channels WHERE handle = \\$1").
				WithArgs("@req1").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.RemoveChannel(context.Background(), "@req1")

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChannelRepo_ListChannels(t *testing.T) {
	tests := []struct {
		name             string
		mockRows         *sqlmock.Rows
		mockError        error
		expectedChannels []domain.Channel
		expectedError    bool
	}{
		{
			name:     "two channels",
			mockRows: sqlmock.NewRows([]string{"handle"}).AddRow("@a_channel").AddRow("@b_channel"),
			expectedChannels: []domain.Channel{
				{Handle: "@a_channel"},
				{Handle: "@b_channel"},
			},
		},
		{
			name:             "no channels",
			mockRows:         sqlmock.NewRows([]string{"handle"}),
			expectedChannels: nil,
		},
		{
			name:          "query error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewChannelRepo(db)

			query := "SELECT handle FROM channels ORDER BY handle"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			channels, err := repo.ListChannels(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrStorageFailure))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedChannels, channels)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
