package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/participant-tracker/internal/adapter"
	"github.com/MKhiriev/participant-tracker/internal/mock"
	"github.com/MKhiriev/participant-tracker/internal/service"
	"github.com/MKhiriev/participant-tracker/internal/store"
)

// Every double must keep satisfying the interface it is generated from.
var (
	_ store.UserRepository     = (*mock.MockUserRepository)(nil)
	_ store.ErrorClassificator = (*mock.MockErrorClassificator)(nil)

	_ adapter.ProgressSource = (*mock.MockProgressSource)(nil)
	_ adapter.ProgressCache  = (*mock.MockProgressCache)(nil)

	_ service.AuthService     = (*mock.MockAuthService)(nil)
	_ service.UserService     = (*mock.MockUserService)(nil)
	_ service.ProgressService = (*mock.MockProgressService)(nil)
	_ service.AppInfoService  = (*mock.MockAppInfoService)(nil)
)

func TestMockUserRepository_ListUsersRecordsArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	repo.EXPECT().ListUsers(gomock.Any(), 40, 20).Return(nil, nil)

	users, err := repo.ListUsers(context.Background(), 40, 20)

	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestMockAppInfoService_GetAppVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockAppInfoService(ctrl)

	svc.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}
