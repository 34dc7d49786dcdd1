// Package domain defines the core milestone entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Milestone represents a personal goal with a target date and an optional
// completion date. Every milestone belongs to exactly one user and is only
// visible to its owner.
type Milestone struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	Completed     bool
	AchieveDate   *time.Time
	CompletedDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
