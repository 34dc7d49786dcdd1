// Package http provides HTTP handlers for milestone operations.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	identityDomain "github.com/skywalker/milestones/internal/identity/domain"
	identityHTTP "github.com/skywalker/milestones/internal/identity/http"
	"github.com/skywalker/milestones/internal/milestone/domain"
	"github.com/skywalker/milestones/internal/milestone/usecase"
)

// mockMilestoneUseCase is a mock implementation of usecase.UseCase for testing.
type mockMilestoneUseCase struct {
	mock.Mock
}

func (m *mockMilestoneUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input usecase.CreateMilestoneInput,
) (*domain.Milestone, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Milestone), args.Error(1)
}

func (m *mockMilestoneUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Milestone, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Milestone), args.Error(1)
}

func (m *mockMilestoneUseCase) List(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Milestone), args.Error(1)
}

func (m *mockMilestoneUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input usecase.UpdateMilestoneInput,
) (*domain.Milestone, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Milestone), args.Error(1)
}

func (m *mockMilestoneUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMilestoneRouter wires the handler behind a middleware that injects the
// given user, standing in for the authentication middleware.
func newMilestoneRouter(milestoneUC *mockMilestoneUseCase, user *identityDomain.User) *gin.Engine {
	handler := NewMilestoneHandler(milestoneUC, createTestLogger())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user != nil {
			c.Request = c.Request.WithContext(identityHTTP.WithUser(c.Request.Context(), user))
		}
		c.Next()
	})

	group := router.Group("/api/milestones")
	group.POST("", handler.CreateMilestoneHandler)
	group.GET("", handler.ListMilestonesHandler)
	group.GET("/:id", handler.GetMilestoneHandler)
	group.PUT("/:id", handler.UpdateMilestoneHandler)
	group.DELETE("/:id", handler.DeleteMilestoneHandler)
	return router
}

func testUser() *identityDomain.User {
	return &identityDomain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Email: "john@example.com",
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCreateMilestoneHandler_Success(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	user := testUser()
	router := newMilestoneRouter(milestoneUC, user)

	achieveDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	milestone := &domain.Milestone{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      user.ID,
		Title:       "Run a marathon",
		Description: "Complete a full 42km race",
		AchieveDate: &achieveDate,
	}

	milestoneUC.On("Create", mock.Anything, user.ID, usecase.CreateMilestoneInput{
		Title:       "Run a marathon",
		Description: "Complete a full 42km race",
		AchieveDate: &achieveDate,
	}).Return(milestone, nil).Once()

	w := doJSON(t, router, http.MethodPost, "/api/milestones", map[string]any{
		"title":        "Run a marathon",
		"description":  "Complete a full 42km race",
		"achieve_date": "2026-12-31",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Run a marathon", response["title"])
	assert.Equal(t, "2026-12-31", response["achieve_date"])
	assert.Equal(t, false, response["completed"])
	assert.Nil(t, response["completed_date"])

	milestoneUC.AssertExpectations(t)
}

func TestCreateMilestoneHandler_ValidationError(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	router := newMilestoneRouter(milestoneUC, testUser())

	w := doJSON(t, router, http.MethodPost, "/api/milestones", map[string]any{
		"title": "   ",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	milestoneUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateMilestoneHandler_InvalidDate(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	router := newMilestoneRouter(milestoneUC, testUser())

	w := doJSON(t, router, http.MethodPost, "/api/milestones", map[string]any{
		"title":        "Run a marathon",
		"achieve_date": "31/12/2026",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	milestoneUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateMilestoneHandler_NoAuthenticatedUser(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	router := newMilestoneRouter(milestoneUC, nil)

	w := doJSON(t, router, http.MethodPost, "/api/milestones", map[string]any{
		"title": "Run a marathon",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	milestoneUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestListMilestonesHandler_ReturnsOnlyOwnMilestones(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	user := testUser()
	router := newMilestoneRouter(milestoneUC, user)

	milestones := []*domain.Milestone{
		{ID: uuid.Must(uuid.NewV7()), UserID: user.ID, Title: "First"},
		{ID: uuid.Must(uuid.NewV7()), UserID: user.ID, Title: "Second"},
	}

	// The use case is keyed by the context user's ID, so the list can only
	// ever contain this user's milestones.
	milestoneUC.On("List", mock.Anything, user.ID).Return(milestones, nil).Once()

	w := doJSON(t, router, http.MethodGet, "/api/milestones", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)

	milestoneUC.AssertExpectations(t)
}

func TestGetMilestoneHandler_NotFoundForOtherUsersRecord(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	user := testUser()
	router := newMilestoneRouter(milestoneUC, user)

	milestoneID := uuid.Must(uuid.NewV7())
	milestoneUC.On("Get", mock.Anything, user.ID, milestoneID).
		Return(nil, domain.ErrMilestoneNotFound).
		Once()

	w := doJSON(t, router, http.MethodGet, "/api/milestones/"+milestoneID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	milestoneUC.AssertExpectations(t)
}

func TestGetMilestoneHandler_InvalidID(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	router := newMilestoneRouter(milestoneUC, testUser())

	w := doJSON(t, router, http.MethodGet, "/api/milestones/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	milestoneUC.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateMilestoneHandler_Success(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	user := testUser()
	router := newMilestoneRouter(milestoneUC, user)

	milestoneID := uuid.Must(uuid.NewV7())
	completedDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	milestone := &domain.Milestone{
		ID:            milestoneID,
		UserID:        user.ID,
		Title:         "Run a marathon",
		Completed:     true,
		CompletedDate: &completedDate,
	}

	milestoneUC.On("Update", mock.Anything, user.ID, milestoneID, usecase.UpdateMilestoneInput{
		Title:     "Run a marathon",
		Completed: true,
	}).Return(milestone, nil).Once()

	w := doJSON(t, router, http.MethodPut, "/api/milestones/"+milestoneID.String(), map[string]any{
		"title":     "Run a marathon",
		"completed": true,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["completed"])
	assert.Equal(t, "2026-08-15", response["completed_date"])

	milestoneUC.AssertExpectations(t)
}

func TestDeleteMilestoneHandler_Success(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	user := testUser()
	router := newMilestoneRouter(milestoneUC, user)

	milestoneID := uuid.Must(uuid.NewV7())
	milestoneUC.On("Delete", mock.Anything, user.ID, milestoneID).Return(nil).Once()

	w := doJSON(t, router, http.MethodDelete, "/api/milestones/"+milestoneID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	milestoneUC.AssertExpectations(t)
}

func TestDeleteMilestoneHandler_NotFound(t *testing.T) {
	milestoneUC := &mockMilestoneUseCase{}
	user := testUser()
	router := newMilestoneRouter(milestoneUC, user)

	milestoneID := uuid.Must(uuid.NewV7())
	milestoneUC.On("Delete", mock.Anything, user.ID, milestoneID).
		Return(domain.ErrMilestoneNotFound).
		Once()

	w := doJSON(t, router, http.MethodDelete, "/api/milestones/"+milestoneID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	milestoneUC.AssertExpectations(t)
}
