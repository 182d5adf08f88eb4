package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/wedding-composer/internal/domain"
	userRepo "github.com/m04kA/wedding-composer/internal/infra/storage/user"
	"github.com/m04kA/wedding-composer/internal/service/users/models"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

type fakeRepo struct {
	users  map[int64]*domain.User
	emails map[string]bool
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]*domain.User), emails: make(map[string]bool)}
}

func (f *fakeRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.emails[u.Email] {
		return nil, userRepo.ErrDuplicateEmail
	}
	u.ID = int64(len(f.users) + 1)
	u.CreatedAt = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	f.users[u.ID] = u
	f.emails[u.Email] = true
	return u, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, logger.NewNop())
	svc.cost = bcrypt.MinCost
	return svc
}

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Email:    "  Ann@Example.com ",
		Name:     "Ann",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ann@example.com", resp.Email)

	stored := repo.users[1]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	req := &models.CreateUserRequest{Email: "ann@example.com", Name: "Ann", Password: "password1"}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	req.Email = "ANN@example.com"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(newFakeRepo())

	for name, req := range map[string]*models.CreateUserRequest{
		"bad email":      {Email: "nope", Name: "Ann", Password: "password1"},
		"empty name":     {Email: "a@b.co", Name: "  ", Password: "password1"},
		"short password": {Email: "a@b.co", Name: "Ann", Password: "short"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Create_HashFailure(t *testing.T) {
	svc := newTestService(newFakeRepo())
	svc.hash = func([]byte, int) ([]byte, error) { return nil, errors.New("boom") }

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{Email: "a@b.co", Name: "Ann", Password: "password1"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	_, err := svc.Create(context.Background(), &models.CreateUserRequest{Email: "a@b.co", Name: "Ann", Password: "password1"})
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", resp.Email)

	_, err = svc.GetByID(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 5, 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
