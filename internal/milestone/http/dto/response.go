// Package dto provides data transfer objects for the milestone HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// MilestoneResponse represents the API response for a milestone
type MilestoneResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Completed     bool      `json:"completed"`
	AchieveDate   *Date     `json:"achieve_date"`
	CompletedDate *Date     `json:"completed_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
