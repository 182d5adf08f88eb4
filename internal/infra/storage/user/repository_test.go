package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/pkg/dbmetrics"
)

var userColumns = []string{"id", "email", "name", "phone", "password_hash", "created_at", "updated_at"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email,name,phone,password_hash)")).
		WithArgs("ann@example.com", "Ann", nil, "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	u, err := repo.Create(context.Background(), &domain.User{
		Email:        " Ann@Example.com ",
		Name:         "Ann",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, now, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Create(context.Background(), &domain.User{Email: "ann@example.com", Name: "Ann", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = $1")).
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(3), "ann@example.com", "Ann", "555-0100", "hash", now, now))

	u, err := repo.GetByEmail(context.Background(), "ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", *u.Phone)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
