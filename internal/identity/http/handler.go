// Package http provides HTTP handlers and middleware for identity operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skywalker/milestones/internal/httputil"
	"github.com/skywalker/milestones/internal/identity/domain"
	"github.com/skywalker/milestones/internal/identity/http/dto"
	"github.com/skywalker/milestones/internal/identity/usecase"

	apperrors "github.com/skywalker/milestones/internal/errors"
)

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	authUseCase usecase.Authenticator
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUseCase usecase.Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// SignupHandler registers a new user account.
// POST /api/auth/signup - No authentication required.
// Returns 201 Created with the sanitized user; no token is issued at signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), dto.ToRegisterInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "user registered successfully",
		User:    dto.ToUserResponse(user),
	})
}

// LoginHandler verifies credentials and issues a signed token.
// POST /api/auth/login - No authentication required.
//
// Invalid credentials always produce the same response body, whether the email
// is unknown or the password is wrong.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))
	if err != nil {
		if apperrors.Is(err, domain.ErrInvalidCredentials) {
			// Internal logs may distinguish the cause; the response never does.
			h.logger.Info("login failed", slog.Any("error", err))
			c.JSON(http.StatusUnauthorized, dto.AuthResponse{
				Success: false,
				Message: "invalid email or password",
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success:   true,
		Message:   "login successful",
		Token:     output.Token,
		TokenType: output.TokenType,
		ExpiresIn: output.ExpiresIn,
		User:      dto.ToUserResponse(output.User),
	})
}
