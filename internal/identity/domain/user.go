// Package domain defines the core identity entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Password always holds the one-way hash,
// never the plaintext; it must never appear in responses or logs.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
