// Package http provides HTTP handlers and middleware for identity operations.
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

	apperrors "github.com/skywalker/milestones/internal/errors"
	"github.com/skywalker/milestones/internal/identity/domain"
	"github.com/skywalker/milestones/internal/identity/usecase"
)

// mockAuthenticator is a mock implementation of usecase.Authenticator for testing.
type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthenticator) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestLogger creates a test logger that discards output.
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthRouter(authUC *mockAuthenticator) *gin.Engine {
	handler := NewAuthHandler(authUC, createTestLogger())

	router := gin.New()
	router.POST("/api/auth/signup", handler.SignupHandler)
	router.POST("/api/auth/login", handler.LoginHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignupHandler_Success(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "$argon2id$...",
		CreatedAt: now,
		UpdatedAt: now,
	}

	authUC.On("Register", mock.Anything, usecase.RegisterInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "SecurePass123!",
	}).Return(user, nil).Once()

	w := postJSON(t, router, "/api/auth/signup", map[string]string{
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "john@example.com",
		"password":   "SecurePass123!",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "user registered successfully", response["message"])
	assert.NotContains(t, response, "token")

	userBody, ok := response["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john@example.com", userBody["email"])
	assert.Equal(t, "John", userBody["first_name"])
	assert.NotContains(t, userBody, "password")

	authUC.AssertExpectations(t)
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	authUC.On("Register", mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
		Return(nil, domain.ErrUserAlreadyExists).
		Once()

	w := postJSON(t, router, "/api/auth/signup", map[string]string{
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "john@example.com",
		"password":   "SecurePass123!",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	authUC.AssertExpectations(t)
}

func TestSignupHandler_ValidationError(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	w := postJSON(t, router, "/api/auth/signup", map[string]string{
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "not-an-email",
		"password":   "SecurePass123!",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	authUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSignupHandler_MalformedJSON(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLoginHandler_Success(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "$argon2id$...",
	}

	authUC.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "john@example.com",
		Password: "SecurePass123!",
	}).Return(&usecase.LoginOutput{
		Token:     "signed-token",
		TokenType: "Bearer",
		ExpiresIn: 86400,
		User:      user,
	}, nil).Once()

	w := postJSON(t, router, "/api/auth/login", map[string]string{
		"email":    "john@example.com",
		"password": "SecurePass123!",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "signed-token", response["token"])
	assert.Equal(t, "Bearer", response["token_type"])
	assert.Equal(t, float64(86400), response["expires_in"])

	userBody, ok := response["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, userBody, "password")

	authUC.AssertExpectations(t)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	// Unknown email and wrong password surface as the same use case error,
	// so both produce this exact response.
	authUC.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials).
		Twice()

	first := postJSON(t, router, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "SecurePass123!",
	})
	second := postJSON(t, router, "/api/auth/login", map[string]string{
		"email":    "john@example.com",
		"password": "WrongPass123!",
	})

	assert.Equal(t, http.StatusUnauthorized, first.Code)
	assert.Equal(t, http.StatusUnauthorized, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var response map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "invalid email or password", response["message"])
	assert.NotContains(t, response, "token")

	authUC.AssertExpectations(t)
}

func TestLoginHandler_MissingFields(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	w := postJSON(t, router, "/api/auth/login", map[string]string{})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	authUC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLoginHandler_StoreUnavailable(t *testing.T) {
	authUC := &mockAuthenticator{}
	router := newAuthRouter(authUC)

	authUC.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, apperrors.ErrUnavailable).
		Once()

	w := postJSON(t, router, "/api/auth/login", map[string]string{
		"email":    "john@example.com",
		"password": "SecurePass123!",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	authUC.AssertExpectations(t)
}
