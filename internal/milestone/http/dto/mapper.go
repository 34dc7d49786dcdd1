// Package dto provides data transfer objects for the milestone HTTP layer.
package dto

import (
	"github.com/skywalker/milestones/internal/milestone/domain"
	"github.com/skywalker/milestones/internal/milestone/usecase"
)

// ToCreateMilestoneInput converts a CreateMilestoneRequest DTO to a use case input
func ToCreateMilestoneInput(req CreateMilestoneRequest) usecase.CreateMilestoneInput {
	return usecase.CreateMilestoneInput{
		Title:       req.Title,
		Description: req.Description,
		AchieveDate: req.AchieveDate.AsTime(),
	}
}

// ToUpdateMilestoneInput converts an UpdateMilestoneRequest DTO to a use case input
func ToUpdateMilestoneInput(req UpdateMilestoneRequest) usecase.UpdateMilestoneInput {
	return usecase.UpdateMilestoneInput{
		Title:         req.Title,
		Description:   req.Description,
		Completed:     req.Completed,
		AchieveDate:   req.AchieveDate.AsTime(),
		CompletedDate: req.CompletedDate.AsTime(),
	}
}

// ToMilestoneResponse converts a domain Milestone model to a MilestoneResponse DTO
func ToMilestoneResponse(milestone *domain.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:            milestone.ID,
		UserID:        milestone.UserID,
		Title:         milestone.Title,
		Description:   milestone.Description,
		Completed:     milestone.Completed,
		AchieveDate:   NewDate(milestone.AchieveDate),
		CompletedDate: NewDate(milestone.CompletedDate),
		CreatedAt:     milestone.CreatedAt,
		UpdatedAt:     milestone.UpdatedAt,
	}
}

// ToMilestoneListResponse converts a slice of domain Milestones to response DTOs
func ToMilestoneListResponse(milestones []*domain.Milestone) []MilestoneResponse {
	responses := make([]MilestoneResponse, 0, len(milestones))
	for _, milestone := range milestones {
		responses = append(responses, ToMilestoneResponse(milestone))
	}
	return responses
}
