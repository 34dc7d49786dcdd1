package usecase

import (
	"context"
	"time"

	"github.com/skywalker/milestones/internal/identity/domain"
	"github.com/skywalker/milestones/internal/metrics"
)

// authUseCaseWithMetrics decorates Authenticator with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    Authenticator
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an Authenticator with metrics recording.
func NewAuthUseCaseWithMetrics(useCase Authenticator, m metrics.BusinessMetrics) Authenticator {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for registration operations.
func (a *authUseCaseWithMetrics) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	start := time.Now()
	user, err := a.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "register", status)
	a.metrics.RecordDuration(ctx, "auth", "register", time.Since(start), status)

	return user, err
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// Authenticate records metrics for token authentication operations.
func (a *authUseCaseWithMetrics) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	start := time.Now()
	user, err := a.next.Authenticate(ctx, tokenString)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return user, err
}
