package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/skywalker/milestones/internal/database"
	"github.com/skywalker/milestones/internal/milestone/domain"
	appValidation "github.com/skywalker/milestones/internal/validation"
)

// MilestoneUseCase handles milestone-related business logic.
type MilestoneUseCase struct {
	txManager     database.TxManager
	milestoneRepo MilestoneRepository
}

// NewMilestoneUseCase creates a new MilestoneUseCase.
func NewMilestoneUseCase(txManager database.TxManager, milestoneRepo MilestoneRepository) UseCase {
	return &MilestoneUseCase{
		txManager:     txManager,
		milestoneRepo: milestoneRepo,
	}
}

func validateMilestoneFields(title, description string) error {
	input := struct {
		Title       string
		Description string
	}{title, description}

	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Description,
			validation.Length(0, 2000).Error("description must be at most 2000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new milestone owned by the given user.
func (uc *MilestoneUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input CreateMilestoneInput,
) (*domain.Milestone, error) {
	if err := validateMilestoneFields(input.Title, input.Description); err != nil {
		return nil, err
	}

	milestone := &domain.Milestone{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		AchieveDate: input.AchieveDate,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.milestoneRepo.Create(ctx, milestone)
	})
	if err != nil {
		return nil, err
	}

	return milestone, nil
}

// Get retrieves a single milestone owned by the given user.
func (uc *MilestoneUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Milestone, error) {
	return uc.milestoneRepo.GetByID(ctx, userID, id)
}

// List retrieves all milestones owned by the given user.
func (uc *MilestoneUseCase) List(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error) {
	return uc.milestoneRepo.ListByUser(ctx, userID)
}

// Update replaces the mutable fields of a milestone owned by the given user.
//
// Marking a milestone completed without an explicit completion date stamps it
// with the current date; clearing the completed flag clears the date.
func (uc *MilestoneUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input UpdateMilestoneInput,
) (*domain.Milestone, error) {
	if err := validateMilestoneFields(input.Title, input.Description); err != nil {
		return nil, err
	}

	var updated *domain.Milestone
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		milestone, err := uc.milestoneRepo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}

		milestone.Title = input.Title
		milestone.Description = input.Description
		milestone.Completed = input.Completed
		milestone.AchieveDate = input.AchieveDate
		milestone.CompletedDate = input.CompletedDate

		switch {
		case milestone.Completed && milestone.CompletedDate == nil:
			today := truncateToDate(time.Now().UTC())
			milestone.CompletedDate = &today
		case !milestone.Completed:
			milestone.CompletedDate = nil
		}

		if err := uc.milestoneRepo.Update(ctx, milestone); err != nil {
			return err
		}

		updated = milestone
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a milestone owned by the given user.
func (uc *MilestoneUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return uc.milestoneRepo.Delete(ctx, userID, id)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
