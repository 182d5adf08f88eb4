package models

import (
	"time"

	"github.com/m04kA/wedding-composer/internal/domain"
)

// CreateUserRequest запрос на регистрацию
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Name     string  `json:"name" validate:"required,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse публичные данные пользователя, без хеша пароля
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
