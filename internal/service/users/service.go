package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/wedding-composer/internal/domain"
	userRepo "github.com/m04kA/wedding-composer/internal/infra/storage/user"
	"github.com/m04kA/wedding-composer/internal/service/users/models"
)

const (
	minPasswordLength = 8
	// bcrypt учитывает только первые 72 байта
	maxPasswordLength = 72
)

// Service сервис пользователей
type Service struct {
	userRepo UserRepository
	hash     PasswordHasher
	cost     int
	logger   Logger
}

// NewService создает сервис пользователей с bcrypt.DefaultCost
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		hash:     bcrypt.GenerateFromPassword,
		cost:     bcrypt.DefaultCost,
		logger:   logger,
	}
}

// Create регистрирует пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Create: registering user email=%s", email)

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d-%d bytes", ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}

	hash, err := s.hash([]byte(req.Password), s.cost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash password: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: user id=%d registered", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID возвращает аккаунт; пользователь видит только себя
func (s *Service) GetByID(ctx context.Context, id, requesterID int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	if id != requesterID {
		s.logger.Warn("GetByID: user=%d requested account id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(u), nil
}
