package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/mock"
	"github.com/MKhiriev/participant-tracker/internal/store"
	"github.com/MKhiriev/participant-tracker/models"
)

type progressMocks struct {
	repo   *mock.MockUserRepository
	source *mock.MockProgressSource
}

func newTestProgressSvc(t *testing.T, ctrl *gomock.Controller) (*progressService, progressMocks) {
	t.Helper()

	m := progressMocks{
		repo:   mock.NewMockUserRepository(ctrl),
		source: mock.NewMockProgressSource(ctrl),
	}
	svc := NewProgressService(m.repo, m.source, logger.Nop()).(*progressService)
	svc.now = func() time.Time { return fixedNow }

	return svc, m
}

func participant() models.User {
	return models.User{ID: 7, Email: "ana@example.com", DNI: "1020304050", InitialTestDone: true}
}

func boolPtr(b bool) *bool { return &b }

// ─────────────────────────────────────────────
// GetMyProgress
// ─────────────────────────────────────────────

func TestGetMyProgress_WithRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(participant(), nil)
	m.source.EXPECT().ReadAll(gomock.Any()).Return([]models.ProgressRow{
		{StudentID: "999", Medals: models.Medals{M1: true, M2: true, M3: true, M4: true}},
		{StudentID: "1020304050", Medals: models.Medals{M2: true}},
	}, nil)

	got, err := svc.GetMyProgress(context.Background(), "ana@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.ProgressMe{M2: true, InitialTestDone: true}, got)
}

func TestGetMyProgress_NoRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(participant(), nil)
	m.source.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)

	got, err := svc.GetMyProgress(context.Background(), "ana@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.ProgressMe{InitialTestDone: true}, got)
}

func TestGetMyProgress_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestProgressSvc(t, ctrl)

		m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
		m.source.EXPECT().ReadAll(gomock.Any()).Times(0)

		_, err := svc.GetMyProgress(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("upstream read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestProgressSvc(t, ctrl)

		m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(participant(), nil)
		m.source.EXPECT().ReadAll(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.GetMyProgress(context.Background(), "ana@example.com")
		assert.ErrorIs(t, err, ErrUpstreamReadFailed)
	})
}

// ─────────────────────────────────────────────
// UpdateMedals
// ─────────────────────────────────────────────

func TestUpdateMedals_MergesWithCurrentRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	gomock.InOrder(
		m.repo.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(participant(), nil),
		m.source.EXPECT().ReadAll(gomock.Any()).Return([]models.ProgressRow{
			{StudentID: "1020304050", Medals: models.Medals{M1: true, M2: true}},
		}, nil),
		m.source.EXPECT().UpsertMedals(gomock.Any(), "1020304050", models.Medals{M1: true, M2: false, M3: true}).Return(nil),
	)

	got, err := svc.UpdateMedals(context.Background(), "ana@example.com", models.UpdateMedalsRequest{
		M2: boolPtr(false),
		M3: boolPtr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, models.ProgressMe{M1: true, M3: true, InitialTestDone: true}, got)
}

func TestUpdateMedals_NoRowDefaultsToFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(participant(), nil)
	m.source.EXPECT().ReadAll(gomock.Any()).Return([]models.ProgressRow{}, nil)
	m.source.EXPECT().UpsertMedals(gomock.Any(), "1020304050", models.Medals{M4: true}).Return(nil)

	got, err := svc.UpdateMedals(context.Background(), "ana@example.com", models.UpdateMedalsRequest{M4: boolPtr(true)})

	require.NoError(t, err)
	assert.True(t, got.M4)
	assert.False(t, got.M1)
}

func TestUpdateMedals_UpsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(participant(), nil)
	m.source.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
	m.source.EXPECT().UpsertMedals(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("502 from upstream"))
	m.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateMedals(context.Background(), "ana@example.com", models.UpdateMedalsRequest{M1: boolPtr(true)})

	assert.ErrorIs(t, err, ErrUpstreamWriteFailed)
}

// ─────────────────────────────────────────────
// MarkTestDone
// ─────────────────────────────────────────────

func TestMarkTestDone_InitialStoresRiskLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	user := participant()
	user.InitialTestDone = false

	var saved models.User
	m.repo.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(user, nil)
	m.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			saved = u
			return u, nil
		})

	err := svc.MarkTestDone(context.Background(), "ana@example.com", models.TestSubmitRequest{
		Kind: "Test-Inicial",
		Answers: []models.Answer{
			models.TextAnswer("caminar_bici"),
			models.TextAnswer("madrugada"),
			models.NumberAnswer(1),
			models.TextAnswer("si"),
			models.TextAnswer("no"),
		},
	})

	require.NoError(t, err)
	assert.True(t, saved.InitialTestDone)
	assert.False(t, saved.ExitTestDone)
	require.NotNil(t, saved.RiskLevel)
	assert.Equal(t, models.RiskHigh.String(), *saved.RiskLevel)
	assert.Equal(t, fixedNow, saved.UpdatedAt)
}

func TestMarkTestDone_ShortAnswersYieldUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	var saved models.User
	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(participant(), nil)
	m.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			saved = u
			return u, nil
		})

	err := svc.MarkTestDone(context.Background(), "ana@example.com", models.TestSubmitRequest{
		Kind:    models.TestKindInitial,
		Answers: []models.Answer{models.TextAnswer("caminar_bici")},
	})

	require.NoError(t, err)
	require.NotNil(t, saved.RiskLevel)
	assert.Equal(t, models.RiskUnknown.String(), *saved.RiskLevel)
}

func TestMarkTestDone_Exit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	var saved models.User
	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(participant(), nil)
	m.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			saved = u
			return u, nil
		})

	err := svc.MarkTestDone(context.Background(), "ana@example.com", models.TestSubmitRequest{Kind: "test-salida"})

	require.NoError(t, err)
	assert.True(t, saved.ExitTestDone)
	assert.Nil(t, saved.RiskLevel)
}

func TestMarkTestDone_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	m.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Times(0)

	err := svc.MarkTestDone(context.Background(), "ana@example.com", models.TestSubmitRequest{Kind: "test-medio"})

	assert.ErrorIs(t, err, ErrInvalidTestKind)
}

// ─────────────────────────────────────────────
// Experience status report
// ─────────────────────────────────────────────

func TestUsersExperienceStatusPage_ClampsAndProjects(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"regular", 2, 10, 2, 10, 20},
		{"negative page", -3, 10, 0, 10, 0},
		{"zero size", 1, 0, 1, 1, 1},
		{"oversized", 0, 500, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestProgressSvc(t, ctrl)

			users := []models.User{
				{ID: 1, DNI: "100", InitialTestDone: true, ExitTestDone: true},
				{ID: 2, DNI: "200"},
			}

			m.source.EXPECT().ReadAll(gomock.Any()).Return([]models.ProgressRow{
				{StudentID: " 100 ", Medals: models.Medals{M1: true}},
				{StudentID: "100", Medals: models.Medals{M1: true, M2: true}},
			}, nil)
			m.repo.EXPECT().CountUsers(gomock.Any()).Return(int64(42), nil)
			m.repo.EXPECT().ListUsers(gomock.Any(), tt.wantOffset, tt.wantSize).Return(users, nil)

			got, err := svc.UsersExperienceStatusPage(context.Background(), tt.page, tt.size)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.Size)
			assert.Equal(t, int64(42), got.TotalUsers)
			require.Len(t, got.UserList, 2)
			assert.Equal(t, 60, got.UserList[0].ExperienceStatus)
			assert.Equal(t, 0, got.UserList[1].ExperienceStatus)
		})
	}
}

func TestUsersExperienceStatusPage_OffsetOverflow(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
	}{
		{"huge page", 100000000000000000, 100},
		{"max int page", math.MaxInt, 1},
		{"just past the limit", math.MaxInt/20 + 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestProgressSvc(t, ctrl)

			m.source.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
			m.repo.EXPECT().CountUsers(gomock.Any()).Return(int64(3), nil)
			m.repo.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			got, err := svc.UsersExperienceStatusPage(context.Background(), tt.page, tt.size)

			require.NoError(t, err)
			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.size, got.Size)
			assert.Equal(t, int64(3), got.TotalUsers)
			assert.NotNil(t, got.UserList)
			assert.Empty(t, got.UserList)
		})
	}
}

func TestUsersExperienceStatusPage_LastRepresentableOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	page := math.MaxInt / 100
	m.source.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().CountUsers(gomock.Any()).Return(int64(3), nil)
	m.repo.EXPECT().ListUsers(gomock.Any(), page*100, 100).Return(nil, nil)

	got, err := svc.UsersExperienceStatusPage(context.Background(), page, 100)

	require.NoError(t, err)
	assert.Empty(t, got.UserList)
}

func TestUsersExperienceStatusPage_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	m.source.EXPECT().ReadAll(gomock.Any()).Return(nil, errors.New("refused"))
	m.repo.EXPECT().CountUsers(gomock.Any()).Times(0)

	_, err := svc.UsersExperienceStatusPage(context.Background(), 0, 10)

	assert.ErrorIs(t, err, ErrUpstreamReadFailed)
}

func TestAllUsersExperienceStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	m.source.EXPECT().ReadAll(gomock.Any()).Return([]models.ProgressRow{
		{StudentID: "200", Medals: models.Medals{M1: true, M2: true, M3: true, M4: true}},
	}, nil)
	m.repo.EXPECT().ListAllUsers(gomock.Any()).Return([]models.User{
		{ID: 1, DNI: "100"},
		{ID: 2, DNI: "200", InitialTestDone: true, ExitTestDone: true},
	}, nil)

	got, err := svc.AllUsersExperienceStatus(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].ExperienceStatus)
	assert.Equal(t, 100, got[1].ExperienceStatus)
}

func TestAllUsersExperienceStatus_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestProgressSvc(t, ctrl)

	dbErr := errors.New("db down")
	m.source.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().ListAllUsers(gomock.Any()).Return(nil, dbErr)

	_, err := svc.AllUsersExperienceStatus(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
