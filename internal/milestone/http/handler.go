// Package http provides HTTP handlers for milestone operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skywalker/milestones/internal/httputil"
	identityHTTP "github.com/skywalker/milestones/internal/identity/http"
	"github.com/skywalker/milestones/internal/milestone/http/dto"
	"github.com/skywalker/milestones/internal/milestone/usecase"

	apperrors "github.com/skywalker/milestones/internal/errors"
)

// MilestoneHandler handles milestone-related HTTP requests. All handlers
// require the authentication middleware: the owner is always the user stored
// in the request context, never a client-supplied ID.
type MilestoneHandler struct {
	milestoneUseCase usecase.UseCase
	logger           *slog.Logger
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(milestoneUseCase usecase.UseCase, logger *slog.Logger) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneUseCase: milestoneUseCase,
		logger:           logger,
	}
}

func (h *MilestoneHandler) currentUserID(c *gin.Context) (uuid.UUID, bool) {
	user, ok := identityHTTP.GetUser(c.Request.Context())
	if !ok || user == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return uuid.Nil, false
	}
	return user.ID, true
}

func (h *MilestoneHandler) milestoneID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid milestone id: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// CreateMilestoneHandler creates a new milestone for the authenticated user.
// POST /api/milestones - Returns 201 Created with the milestone.
func (h *MilestoneHandler) CreateMilestoneHandler(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	milestone, err := h.milestoneUseCase.Create(c.Request.Context(), userID, dto.ToCreateMilestoneInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMilestoneResponse(milestone))
}

// ListMilestonesHandler lists all milestones owned by the authenticated user.
// GET /api/milestones - Returns 200 OK with the list.
func (h *MilestoneHandler) ListMilestonesHandler(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	milestones, err := h.milestoneUseCase.List(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToMilestoneListResponse(milestones))
}

// GetMilestoneHandler retrieves a single milestone owned by the authenticated user.
// GET /api/milestones/:id - Returns 200 OK, or 404 if the milestone does not
// exist or belongs to another user.
func (h *MilestoneHandler) GetMilestoneHandler(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	id, ok := h.milestoneID(c)
	if !ok {
		return
	}

	milestone, err := h.milestoneUseCase.Get(c.Request.Context(), userID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToMilestoneResponse(milestone))
}

// UpdateMilestoneHandler replaces a milestone owned by the authenticated user.
// PUT /api/milestones/:id - Returns 200 OK with the updated milestone.
func (h *MilestoneHandler) UpdateMilestoneHandler(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	id, ok := h.milestoneID(c)
	if !ok {
		return
	}

	var req dto.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	milestone, err := h.milestoneUseCase.Update(c.Request.Context(), userID, id, dto.ToUpdateMilestoneInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToMilestoneResponse(milestone))
}

// DeleteMilestoneHandler removes a milestone owned by the authenticated user.
// DELETE /api/milestones/:id - Returns 204 No Content.
func (h *MilestoneHandler) DeleteMilestoneHandler(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	id, ok := h.milestoneID(c)
	if !ok {
		return
	}

	if err := h.milestoneUseCase.Delete(c.Request.Context(), userID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
