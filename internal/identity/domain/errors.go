package domain

import (
	"github.com/skywalker/milestones/internal/errors"
)

// Identity and authentication errors.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidCredentials indicates the email/password pair did not match any
	// account. Deliberately identical for unknown email and wrong password to
	// prevent user enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrTokenMalformed indicates the token string could not be parsed.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrTokenSignature indicates the token signature did not verify under the
	// current signing key.
	ErrTokenSignature = errors.Wrap(errors.ErrUnauthorized, "invalid token signature")

	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")
)
