// Package usecase implements the identity business logic: registration,
// login, and token-based authentication.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/skywalker/milestones/internal/identity/domain"
)

// RegisterInput contains the input data for user registration.
type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginInput contains the credentials presented at login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token     string
	TokenType string
	ExpiresIn int64
	User      *domain.User
}

// Authenticator defines the identity business logic operations.
type Authenticator interface {
	// Register creates a new account. The returned user carries the password
	// hash internally; callers shape the outward view and must never expose it.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Login verifies credentials and issues a signed token. Unknown email and
	// wrong password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate verifies a bearer token and resolves it to the current
	// user record. A valid token for a since-deleted account is rejected.
	Authenticate(ctx context.Context, tokenString string) (*domain.User, error)
}

// UserRepository interface defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
