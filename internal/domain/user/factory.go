package user

import (
	"time"

	"github.com/google/uuid"
)

// NewFromCreateRequest builds a User from the incoming DTO. The credential is
// hashed by the caller; the raw value never reaches this package.

func NewFromCreateRequest(req CreateUserRequest, passwordHash string) User {
	now := time.Now().UTC()

	isActive := true

	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Age:          req.Age,
		IsActive:     isActive,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
