// Package dto provides data transfer objects for the milestone HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/skywalker/milestones/internal/validation"
)

// CreateMilestoneRequest represents the API request for milestone creation
type CreateMilestoneRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AchieveDate *Date  `json:"achieve_date"`
}

// Validate validates the CreateMilestoneRequest
func (r *CreateMilestoneRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000).Error("description must be at most 2000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateMilestoneRequest represents the API request for a full milestone update
type UpdateMilestoneRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Completed     bool   `json:"completed"`
	AchieveDate   *Date  `json:"achieve_date"`
	CompletedDate *Date  `json:"completed_date"`
}

// Validate validates the UpdateMilestoneRequest
func (r *UpdateMilestoneRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000).Error("description must be at most 2000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}
