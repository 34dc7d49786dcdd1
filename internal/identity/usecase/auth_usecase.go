package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/skywalker/milestones/internal/database"
	apperrors "github.com/skywalker/milestones/internal/errors"
	"github.com/skywalker/milestones/internal/identity/domain"
	"github.com/skywalker/milestones/internal/identity/service"
	appValidation "github.com/skywalker/milestones/internal/validation"
)

// AuthUseCase handles registration, login, and token authentication.
type AuthUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService service.PasswordService
	tokenService    service.TokenService
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService service.PasswordService,
	tokenService service.TokenService,
) Authenticator {
	return &AuthUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// validateRegisterInput validates the registration input using jellydator/validation
// This provides comprehensive validation including:
// - Required field checks
// - Email format validation
// - Password strength requirements (min 8 chars, uppercase, lowercase, number, special char)
func (uc *AuthUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FirstName,
			validation.Required.Error("first name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first name must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("last name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *AuthUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new user account with a hashed password.
//
// The email is stored exactly as given; the database unique constraint on the
// email column is the sole serialization point for concurrent registrations,
// so the pre-check here only provides a friendlier fast path.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, normalizeUpstreamError(err)
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		// Create user - a concurrent register for the same email loses here,
		// and the repository maps the unique violation to ErrUserAlreadyExists
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, normalizeUpstreamError(err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed token.
//
// Unknown email and wrong password return the same ErrInvalidCredentials so
// the outward failure cannot be used to enumerate accounts.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := uc.validateLoginInput(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, normalizeUpstreamError(err)
	}

	if !uc.passwordService.ComparePassword(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokenService.Issue(user.Email, time.Now().UTC())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	return &LoginOutput{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(uc.tokenService.TTL().Seconds()),
		User:      user,
	}, nil
}

// Authenticate verifies a token and resolves its subject to the current user
// record. The store lookup means a token minted for an account that has since
// been deleted no longer authenticates.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := uc.tokenService.Verify(tokenString, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, normalizeUpstreamError(err)
	}

	return user, nil
}

// normalizeUpstreamError maps collaborator timeouts to the retryable
// unavailable sentinel; other errors pass through unchanged.
func normalizeUpstreamError(err error) error {
	if apperrors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrUnavailable, "identity store timed out")
	}
	return err
}
