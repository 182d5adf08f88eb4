package domain

import "time"

// User a customer account
type User struct {
	ID           int64
	Email        string
	Name         string
	Phone        *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
