// Package grpc exposes the participant tracker's gRPC surface: the standard
// health service, fed by a database readiness probe, plus a unary
// interceptor that gives every call a trace-scoped logger.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/participant-tracker/internal/logger"
)

// ServiceName is the name under which readiness is reported. The empty name
// always mirrors it, so plain `grpc_health_probe` works too.
const ServiceName = "participant-tracker"

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health    *health.Server
	readiness Pinger

	logger *logger.Logger
}

// NewHandler builds a Handler whose readiness follows readiness.Ping.
// A nil readiness reports SERVING unconditionally.
func NewHandler(readiness Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health:    health.NewServer(),
		readiness: readiness,
		logger:    logger,
	}
}

// Register installs the health service on s and marks it SERVING.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// ServerOptions returns the interceptors every server built around h needs.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, withLogging),
	}
}

// Probe pings the readiness dependency once and publishes the result.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.readiness != nil {
		if err := h.readiness.Ping(ctx); err != nil {
			h.logger.Err(err).Str("func", "*Handler.Probe").Msg("readiness check failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.setStatus(status)
	return status
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
