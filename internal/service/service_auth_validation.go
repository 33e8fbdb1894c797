package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/validators"
	"github.com/MKhiriev/participant-tracker/models"
)

// AuthValidationService is a decorator over AuthService that validates
// request payloads before delegating to the wrapped implementation.
type AuthValidationService struct {
	// inner is the wrapped AuthService that receives calls after validation.
	inner AuthService

	// validator checks required fields and the email shape of each request.
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthValidationService creates an AuthServiceWrapper with the request
// validator used by the auth endpoints.
func NewAuthValidationService(logger *logger.Logger) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserRequestValidator(),
		logger:    logger,
	}
}

// Wrap sets the inner AuthService and returns the decorated service.
func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// Signup validates the signup form before delegating.
func (v *AuthValidationService) Signup(ctx context.Context, req models.SignupRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}

	return v.inner.Signup(ctx, req)
}

// Login validates credentials presence before delegating.
func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Token{}, err
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) VerifyIdentity(ctx context.Context, req models.VerifyIdentityRequest) (bool, error) {
	if err := v.validate(ctx, req); err != nil {
		return false, err
	}

	return v.inner.VerifyIdentity(ctx, req)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}

	return v.inner.ResetPassword(ctx, req)
}

// ParseToken delegates directly; tokens are validated by the inner service.
func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Type("request", req).Msg("request validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
