// Package usecase implements the milestone business logic.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skywalker/milestones/internal/milestone/domain"
)

// CreateMilestoneInput contains the input data for milestone creation.
type CreateMilestoneInput struct {
	Title       string
	Description string
	AchieveDate *time.Time
}

// UpdateMilestoneInput contains the input data for milestone updates.
// All fields are replaced, matching a full PUT of the resource.
type UpdateMilestoneInput struct {
	Title         string
	Description   string
	Completed     bool
	AchieveDate   *time.Time
	CompletedDate *time.Time
}

// UseCase defines the milestone business logic operations. Every operation is
// scoped to the authenticated user's ID: records owned by other users behave
// exactly like records that do not exist.
type UseCase interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateMilestoneInput) (*domain.Milestone, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Milestone, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdateMilestoneInput) (*domain.Milestone, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// MilestoneRepository interface defines milestone persistence operations.
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *domain.Milestone) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Milestone, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error)
	Update(ctx context.Context, milestone *domain.Milestone) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
