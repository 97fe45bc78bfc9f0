package user

import (
	"errors"
	"time"
)

type User struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty"`
	IsActive bool   `json:"isActive" bson:"isActive"`
	// bcrypt hash of the credential, stored under the legacy "pwd" key.
	PasswordHash string    `json:"-" bson:"pwd"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

var ErrNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email is already in use")

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Age      *int   `json:"age" binding:"omitempty,min=0"`
	IsActive *bool  `json:"isActive"`
	Pwd      string `json:"pwd" binding:"required"`
}

// Partial patch: nil pointers leave the stored field untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Age      *int    `json:"age" binding:"omitempty,min=0"`
	IsActive *bool   `json:"isActive"`
	Pwd      *string `json:"pwd" binding:"omitempty,min=1"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Pwd   string `json:"pwd" binding:"required"`
}
