package service

import (
	"context"

	"github.com/MKhiriev/participant-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

// AuthService registers participants and manages their credentials and
// session tokens.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	VerifyIdentity(ctx context.Context, req models.VerifyIdentityRequest) (bool, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService reads and edits the signed-in participant's profile.
type UserService interface {
	GetMe(ctx context.Context, email string) (models.User, error)
	PatchUser(ctx context.Context, email string, req models.UpdateUserRequest) (models.User, error)
}

// ProgressService combines local questionnaire state with the medal rows of
// the external progress service.
type ProgressService interface {
	GetMyProgress(ctx context.Context, email string) (models.ProgressMe, error)
	UpdateMedals(ctx context.Context, email string, req models.UpdateMedalsRequest) (models.ProgressMe, error)
	MarkTestDone(ctx context.Context, email string, req models.TestSubmitRequest) error

	UsersExperienceStatusPage(ctx context.Context, page, size int) (models.PagedUsersWithExperienceStatus, error)
	AllUsersExperienceStatus(ctx context.Context) ([]models.UserWithExperienceStatus, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
