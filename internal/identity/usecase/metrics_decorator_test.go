package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skywalker/milestones/internal/identity/domain"
)

// MockAuthenticator is a mock implementation of Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthenticator) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginOutput), args.Error(1)
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Register success", func(t *testing.T) {
		mockNext := &MockAuthenticator{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := RegisterInput{Email: "john@example.com"}
		user := &domain.User{ID: uuid.Must(uuid.NewV7()), Email: "john@example.com"}

		mockNext.On("Register", ctx, input).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "register", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "register", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Register(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		mockNext := &MockAuthenticator{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := LoginInput{Email: "john@example.com", Password: "wrong"}

		mockNext.On("Login", ctx, input).Return(nil, domain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate success", func(t *testing.T) {
		mockNext := &MockAuthenticator{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		user := &domain.User{ID: uuid.Must(uuid.NewV7()), Email: "john@example.com"}

		mockNext.On("Authenticate", ctx, "signed-token").Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "authenticate", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Authenticate(ctx, "signed-token")
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
