// Package dto provides data transfer objects for the identity HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents the API response for a user
// It excludes sensitive information like the password hash and provides
// a clean external representation of the user domain model
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is the envelope returned by the signup and login endpoints.
// Token fields are only populated on a successful login.
type AuthResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Token     string        `json:"token,omitempty"`
	TokenType string        `json:"token_type,omitempty"`
	ExpiresIn int64         `json:"expires_in,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
}
