package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	repo := &userRepository{
		db:     db,
		ids:    &sequentialIDs{},
		logger: logger.Nop(),
	}
	return repo, mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userColumns).AddRow("id-1", "christian", "hash")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id,username,password) VALUES ($1,$2,$3) RETURNING id, username, password")).
		WithArgs("id-1", "christian", "hash").
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), models.User{Username: "christian", Password: "hash"})

	require.NoError(t, err)
	assert.Equal(t, models.User{UserID: "id-1", Username: "christian", Password: "hash"}, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "christian", Password: "hash"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "christian"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userColumns).AddRow("u-1", "christian", "hash")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password FROM users WHERE username = $1")).
		WithArgs("christian").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(context.Background(), "christian")

	require.NoError(t, err)
	assert.Equal(t, "u-1", found.UserID)
	assert.Equal(t, "hash", found.Password)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, username, password FROM users").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindUserByID(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		dbErr   error
		wantErr error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(userColumns).AddRow("u-1", "christian", "hash"),
		},
		{
			name:    "missing",
			rows:    sqlmock.NewRows(userColumns),
			wantErr: ErrUserNotFound,
		},
		{
			name:    "driver failure",
			dbErr:   errors.New("connection reset"),
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).WithArgs("u-1")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			user, err := repo.FindUserByID(context.Background(), "u-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "christian", user.Username)
		})
	}
}
