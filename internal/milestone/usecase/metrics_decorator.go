package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skywalker/milestones/internal/metrics"
	"github.com/skywalker/milestones/internal/milestone/domain"
)

// milestoneUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type milestoneUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewMilestoneUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewMilestoneUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &milestoneUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *milestoneUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "milestone", operation, status)
	u.metrics.RecordDuration(ctx, "milestone", operation, time.Since(start), status)
}

// Create records metrics for milestone creation operations.
func (u *milestoneUseCaseWithMetrics) Create(
	ctx context.Context,
	userID uuid.UUID,
	input CreateMilestoneInput,
) (*domain.Milestone, error) {
	start := time.Now()
	milestone, err := u.next.Create(ctx, userID, input)
	u.record(ctx, "milestone_create", start, err)
	return milestone, err
}

// Get records metrics for milestone retrieval operations.
func (u *milestoneUseCaseWithMetrics) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Milestone, error) {
	start := time.Now()
	milestone, err := u.next.Get(ctx, userID, id)
	u.record(ctx, "milestone_get", start, err)
	return milestone, err
}

// List records metrics for milestone list operations.
func (u *milestoneUseCaseWithMetrics) List(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error) {
	start := time.Now()
	milestones, err := u.next.List(ctx, userID)
	u.record(ctx, "milestone_list", start, err)
	return milestones, err
}

// Update records metrics for milestone update operations.
func (u *milestoneUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input UpdateMilestoneInput,
) (*domain.Milestone, error) {
	start := time.Now()
	milestone, err := u.next.Update(ctx, userID, id, input)
	u.record(ctx, "milestone_update", start, err)
	return milestone, err
}

// Delete records metrics for milestone delete operations.
func (u *milestoneUseCaseWithMetrics) Delete(ctx context.Context, userID, id uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, userID, id)
	u.record(ctx, "milestone_delete", start, err)
	return err
}
