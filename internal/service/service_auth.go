package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/participant-tracker/internal/config"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/store"
	"github.com/MKhiriev/participant-tracker/internal/utils"
	"github.com/MKhiriev/participant-tracker/models"
)

const (
	// minPasswordLength is the shortest password accepted on signup and reset.
	minPasswordLength = 8

	// mobilePrefix is the country prefix prepended to phone numbers entered
	// without one.
	mobilePrefix = "+57"
)

// representativeAges maps the age ranges of the signup form onto the age
// stored for the participant.
var representativeAges = map[string]int{
	models.AgeRangeTeen:   15,
	models.AgeRangeAdult:  30,
	models.AgeRangeSenior: 65,
}

// authService is the concrete implementation of AuthService.
// It handles participant registration, credential verification, password
// recovery and the JWT token lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost used when hashing new passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now returns the current time. Replaced in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		now:              time.Now,
		logger:           logger,
	}
}

// Signup registers a new participant account.
//
// Email uniqueness is checked case-insensitively before the document number.
// A unique-index violation that races past these checks is reported with the
// same errors.
//
// Returns:
//   - ErrWeakPassword if the password is shorter than 8 characters.
//   - ErrEmailAlreadyRegistered or ErrDNIAlreadyRegistered on conflicts.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) error {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if len(req.Password) < minPasswordLength {
		log.Debug().Str("email", email).Msg("password is too short")
		return ErrWeakPassword
	}

	exists, err := a.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("email lookup failed")
		return fmt.Errorf("email lookup failed: %w", err)
	}
	if exists {
		return ErrEmailAlreadyRegistered
	}

	exists, err = a.userRepository.ExistsByDNI(ctx, req.DNI)
	if err != nil {
		log.Err(err).Str("email", email).Msg("document lookup failed")
		return fmt.Errorf("document lookup failed: %w", err)
	}
	if exists {
		return ErrDNIAlreadyRegistered
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user := a.newParticipant(email, hash, req)
	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return mapConflict(fmt.Errorf("user creation ended with error: %w", err))
	}

	log.Info().Int64("id", created.ID).Str("email", created.Email).Msg("participant registered")
	return nil
}

// Login authenticates a participant and issues a signed JWT.
//
// An unknown email, a disabled account and a wrong password are all reported
// as ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login for unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.Enabled || !utils.CheckPassword(user.PasswordHash, req.Password) {
		log.Debug().Int64("id", user.ID).Bool("enabled", user.Enabled).Msg("login rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(user)
}

// VerifyIdentity reports whether req.DNI belongs to the account registered
// under req.Email. An unknown email yields false without an error.
func (a *authService) VerifyIdentity(ctx context.Context, req models.VerifyIdentityRequest) (bool, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	return user.DNI == req.DNI, nil
}

// ResetPassword replaces the password of an enabled account once the email
// and document number match.
//
// Returns:
//   - ErrWeakPassword if the new password is shorter than 8 characters.
//   - store.ErrNoUserWasFound (wrapped) if the email is not registered.
//   - ErrIdentityMismatch if the document number differs.
//   - ErrAccountDisabled if the account is disabled.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if len(req.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	email := normalizeEmail(req.Email)
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.DNI != req.DNI {
		log.Debug().Int64("id", user.ID).Msg("document does not match email")
		return ErrIdentityMismatch
	}
	if !user.Enabled {
		return ErrAccountDisabled
	}

	hash, err := utils.HashPassword(req.NewPassword, a.passwordHashCost)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = a.now().UTC()
	if _, err = a.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", user.ID).Msg("password reset")
	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) newParticipant(email, passwordHash string, req models.SignupRequest) models.User {
	now := a.now().UTC()

	var age *int
	if v, ok := representativeAges[req.AgeRange]; ok {
		age = &v
	}

	return models.User{
		Email:             email,
		DNI:               req.DNI,
		PasswordHash:      passwordHash,
		Name:              req.FullName,
		Gender:            req.Gender,
		Age:               age,
		Mobile:            mobilePrefix + req.Mobile,
		ResidenceCity:     req.Municipality,
		Subregion:         req.Neighborhood,
		DocumentTypeID:    models.DefaultDocumentType,
		DifferentialFocus: req.Focus,
		AvatarID:          0,
		Role:              models.RoleUser,
		Enabled:           true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// mapConflict translates storage uniqueness errors into service errors.
func mapConflict(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
	case errors.Is(err, store.ErrDNIAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDNIAlreadyRegistered, err)
	default:
		return err
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
