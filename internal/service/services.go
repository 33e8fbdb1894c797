package service

import (
	"fmt"

	"github.com/MKhiriev/participant-tracker/internal/adapter"
	"github.com/MKhiriev/participant-tracker/internal/config"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	ProgressService ProgressService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, progressSource adapter.ProgressSource, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthValidationService(logger).
		Wrap(NewAuthService(storages.UserRepository, cfg.App, logger))

	return &Services{
		AuthService:     authService,
		UserService:     NewUserService(storages.UserRepository, logger),
		ProgressService: NewProgressService(storages.UserRepository, progressSource, logger),
		AppInfoService:  appInfoService,
	}, nil
}
