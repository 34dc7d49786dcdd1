// Package dto provides data transfer objects for the identity HTTP layer.
package dto

import (
	"github.com/skywalker/milestones/internal/identity/domain"
	"github.com/skywalker/milestones/internal/identity/usecase"
)

// ToRegisterInput converts a SignupRequest DTO to a RegisterInput use case input
func ToRegisterInput(req SignupRequest) usecase.RegisterInput {
	return usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
}

// ToLoginInput converts a LoginRequest DTO to a LoginInput use case input
func ToLoginInput(req LoginRequest) usecase.LoginInput {
	return usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO
// This enforces the boundary between internal domain models and external API
// contracts: the password hash never crosses it
func ToUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
