package handler

import (
	"github.com/MKhiriev/participant-tracker/internal/config"
	"github.com/MKhiriev/participant-tracker/internal/handler/grpc"
	"github.com/MKhiriev/participant-tracker/internal/handler/http"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/service"
)

// Handlers holds one handler per configured transport. A transport whose
// address is empty in the configuration is left nil.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the HTTP handler over services and the gRPC health
// handler over readiness.
func NewHandlers(services *service.Services, readiness grpc.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(readiness, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
