package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/store"
	"github.com/MKhiriev/participant-tracker/models"
)

// userService implements UserService on top of a UserRepository.
type userService struct {
	userRepository store.UserRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewUserService constructs a UserService backed by userRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// GetMe returns the account registered under email.
// A missing account is reported as a wrapped store.ErrNoUserWasFound.
func (s *userService) GetMe(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

// PatchUser applies the non-nil fields of req to the account registered under
// email and returns the stored result.
func (s *userService) PatchUser(ctx context.Context, email string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.GetMe(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	applyPatch(&user, req)
	user.UpdatedAt = s.now().UTC()

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

func applyPatch(user *models.User, req models.UpdateUserRequest) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Mobile = NormalizePhone(*req.Phone)
	}
	if req.AvatarID != nil {
		user.AvatarID = *req.AvatarID
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Municipality != nil {
		user.ResidenceCity = *req.Municipality
	}
	if req.Neighborhood != nil {
		user.Subregion = *req.Neighborhood
	}
	if req.Focus != nil {
		user.DifferentialFocus = *req.Focus
	}
}

// NormalizePhone trims phone and prepends the "+57" country prefix unless the
// number already starts with "+".
func NormalizePhone(phone string) string {
	p := strings.TrimSpace(phone)
	if strings.HasPrefix(p, "+") {
		return p
	}
	return mobilePrefix + p
}
