package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/participant-tracker/internal/adapter"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/scoring"
	"github.com/MKhiriev/participant-tracker/internal/store"
	"github.com/MKhiriev/participant-tracker/models"
)

const (
	// maxPageSize caps the page size of the experience status report.
	maxPageSize = 100
)

// progressService implements ProgressService. Medals live in the external
// progress service; questionnaire flags and the risk level live on the user.
type progressService struct {
	userRepository store.UserRepository
	progressSource adapter.ProgressSource

	now    func() time.Time
	logger *logger.Logger
}

// NewProgressService constructs a ProgressService.
func NewProgressService(userRepository store.UserRepository, progressSource adapter.ProgressSource, logger *logger.Logger) ProgressService {
	return &progressService{
		userRepository: userRepository,
		progressSource: progressSource,
		now:            time.Now,
		logger:         logger,
	}
}

// GetMyProgress returns the medals stored for the user's DNI together with
// the user's questionnaire flags. A user without a progress row has no medals.
func (s *progressService) GetMyProgress(ctx context.Context, email string) (models.ProgressMe, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return models.ProgressMe{}, err
	}

	row, err := s.currentRow(ctx, user)
	if err != nil {
		return models.ProgressMe{}, err
	}

	var medals models.Medals
	if row != nil {
		medals = row.Medals
	}

	return models.NewProgressMe(user, medals), nil
}

// UpdateMedals merges req over the user's current medals and writes the
// result to the progress service. Nothing is stored locally.
func (s *progressService) UpdateMedals(ctx context.Context, email string, req models.UpdateMedalsRequest) (models.ProgressMe, error) {
	log := logger.FromContext(ctx)

	user, err := s.findUser(ctx, email)
	if err != nil {
		return models.ProgressMe{}, err
	}

	row, err := s.currentRow(ctx, user)
	if err != nil {
		return models.ProgressMe{}, err
	}

	medals := scoring.MergeMedals(row, req)
	if err = s.progressSource.UpsertMedals(ctx, user.DNI, medals); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("medals upsert failed")
		return models.ProgressMe{}, fmt.Errorf("%w: %w", ErrUpstreamWriteFailed, err)
	}

	log.Info().Int64("id", user.ID).Int("medals", medals.Count()).Msg("medals updated")
	return models.NewProgressMe(user, medals), nil
}

// MarkTestDone records a completed questionnaire. The initial test also
// stores the risk level computed from its answers; submitting it again
// overwrites the previous level.
func (s *progressService) MarkTestDone(ctx context.Context, email string, req models.TestSubmitRequest) error {
	log := logger.FromContext(ctx)

	kind := strings.ToLower(strings.TrimSpace(req.Kind))
	if kind != models.TestKindInitial && kind != models.TestKindExit {
		log.Debug().Str("kind", req.Kind).Msg("unknown test kind")
		return ErrInvalidTestKind
	}

	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	switch kind {
	case models.TestKindInitial:
		risk := scoring.RiskLevelFromAnswers(req.Answers).String()
		user.InitialTestDone = true
		user.RiskLevel = &risk
	case models.TestKindExit:
		user.ExitTestDone = true
	}
	user.UpdatedAt = s.now().UTC()

	if _, err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Int64("id", user.ID).Str("kind", kind).Msg("test result update failed")
		return fmt.Errorf("test result update failed: %w", err)
	}

	event := log.Info().Int64("id", user.ID).Str("kind", kind).Str("submittedAt", req.SubmittedAt)
	if user.RiskLevel != nil {
		event = event.Str("riskLevel", *user.RiskLevel)
	}
	event.Msg("test marked as done")

	return nil
}

// UsersExperienceStatusPage returns one page of the experience status report.
// page is clamped to be non-negative and size to [1, 100]. A page whose offset
// does not fit in an int lies past every user and comes back empty.
func (s *progressService) UsersExperienceStatusPage(ctx context.Context, page, size int) (models.PagedUsersWithExperienceStatus, error) {
	log := logger.FromContext(ctx)

	page = max(page, 0)
	size = min(max(size, 1), maxPageSize)

	rows, err := s.readAll(ctx)
	if err != nil {
		return models.PagedUsersWithExperienceStatus{}, err
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.PagedUsersWithExperienceStatus{}, fmt.Errorf("counting users failed: %w", err)
	}

	if page > math.MaxInt/size {
		return models.PagedUsersWithExperienceStatus{
			UserList:   scoring.ExperienceReport(nil, rows),
			TotalUsers: total,
			Page:       page,
			Size:       size,
		}, nil
	}

	users, err := s.userRepository.ListUsers(ctx, page*size, size)
	if err != nil {
		log.Err(err).Int("page", page).Int("size", size).Msg("listing users failed")
		return models.PagedUsersWithExperienceStatus{}, fmt.Errorf("listing users failed: %w", err)
	}

	return models.PagedUsersWithExperienceStatus{
		UserList:   scoring.ExperienceReport(users, rows),
		TotalUsers: total,
		Page:       page,
		Size:       size,
	}, nil
}

// AllUsersExperienceStatus returns the experience status of every user.
func (s *progressService) AllUsersExperienceStatus(ctx context.Context) ([]models.UserWithExperienceStatus, error) {
	rows, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return scoring.ExperienceReport(users, rows), nil
}

func (s *progressService) findUser(ctx context.Context, email string) (models.User, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

func (s *progressService) currentRow(ctx context.Context, user models.User) (*models.ProgressRow, error) {
	rows, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	return models.FindProgressByDNI(rows, user.DNI), nil
}

func (s *progressService) readAll(ctx context.Context) ([]models.ProgressRow, error) {
	rows, err := s.progressSource.ReadAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("reading progress rows failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamReadFailed, err)
	}

	return rows, nil
}
