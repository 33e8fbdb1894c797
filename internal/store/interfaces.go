package store

import (
	"context"

	"github.com/MKhiriev/participant-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists participant accounts.
type UserRepository interface {
	// FindUserByEmail looks the user up case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDNI(ctx context.Context, dni string) (bool, error)

	CountUsers(ctx context.Context) (int64, error)
	// ListUsers returns at most limit users ordered by id, skipping offset.
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, error)
	ListAllUsers(ctx context.Context) ([]models.User, error)

	// CreateUser inserts user and returns it with the generated id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser overwrites every mutable column of the user with user.ID.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator inspects driver errors for a specific SQL backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	Constraint(err error) string
}
