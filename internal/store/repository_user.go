package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works unchanged on PostgreSQL and SQLite; the dialect
// only affects placeholders and error classification.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DNI,
		&u.PasswordHash,
		&u.Name,
		&u.Gender,
		&u.Age,
		&u.BirthDate,
		&u.Telephone,
		&u.Mobile,
		&u.PersonalEmail,
		&u.ResidenceCity,
		&u.Subregion,
		&u.DocumentTypeID,
		&u.DifferentialFocus,
		&u.Program,
		&u.Level,
		&u.RiskLevel,
		&u.AvatarID,
		&u.Role,
		&u.Enabled,
		&u.InitialTestDone,
		&u.ExitTestDone,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// FindUserByEmail returns the user whose email matches case-insensitively.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - query failure → wrapped [ErrExecutingQuery].
//   - scan failure → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ExistsByEmail reports whether any account uses email, ignoring case.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query, args, err := buildExistsByEmailQuery(r.db.builder, email)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := r.count(ctx, "*userRepository.ExistsByEmail", query, args)
	return n > 0, err
}

// ExistsByDNI reports whether any account uses dni.
func (r *userRepository) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	query, args, err := buildExistsByDNIQuery(r.db.builder, dni)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := r.count(ctx, "*userRepository.ExistsByDNI", query, args)
	return n > 0, err
}

// CountUsers returns the total number of accounts.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	query, args, err := buildCountUsersQuery(r.db.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.count(ctx, "*userRepository.CountUsers", query, args)
}

func (r *userRepository) count(ctx context.Context, funcName, query string, args []any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

// ListUsers returns a page of users ordered by id.
func (r *userRepository) ListUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	query, args, err := buildListUsersQuery(r.db.builder, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*userRepository.ListUsers", query, args)
}

// ListAllUsers returns every user ordered by id.
func (r *userRepository) ListAllUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := buildListAllUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*userRepository.ListAllUsers", query, args)
}

func (r *userRepository) list(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 32)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CreateUser inserts user and returns it with the generated id.
//
// Unique violations on email or dni are reported as [ErrEmailAlreadyExists]
// or [ErrDNIAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("failed to insert user")
		return models.User{}, r.writeError(err)
	}

	return user, nil
}

// UpdateUser overwrites the stored row with user. It returns
// [ErrNoUserWasFound] when no row has user.ID.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Int64("user_id", user.ID).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("failed to update user")
		return models.User{}, r.writeError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// writeError maps a failed INSERT/UPDATE to a sentinel error.
func (r *userRepository) writeError(err error) error {
	if r.db.errorClassificator.Classify(err) != UniqueViolation {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	constraint := strings.ToLower(r.db.errorClassificator.Constraint(err))
	switch {
	case strings.Contains(constraint, "email"):
		return ErrEmailAlreadyExists
	case strings.Contains(constraint, "dni"):
		return ErrDNIAlreadyExists
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
