package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/participant-tracker/internal/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// startServer serves h over an in-memory listener and returns a health client.
func startServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth_ServingAfterRegister(t *testing.T) {
	client := startServer(t, NewHandler(nil, logger.Nop()))

	for _, service := range []string{"", ServiceName} {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), service)
	}
}

func TestProbe_FollowsReadiness(t *testing.T) {
	var down bool
	h := NewHandler(pingerFunc(func(context.Context) error {
		if down {
			return errors.New("connection refused")
		}
		return nil
	}), logger.Nop())
	client := startServer(t, h)

	down = true
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Probe(context.Background()))

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	down = false
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Probe(context.Background()))

	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestShutdown_ReportsNotServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startServer(t, h)

	h.Shutdown()
	h.Probe(context.Background())

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

// ─────────────────────────────────────────────
// Interceptors
// ─────────────────────────────────────────────

func TestInterceptors_TraceIDAndAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)})
	client := startServer(t, h)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, "trace-grpc-test")
	var header metadata.MD
	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{}, grpc.Header(&header))
	require.NoError(t, err)

	assert.Equal(t, []string{"trace-grpc-test"}, header.Get(traceIDKey))
	assert.Contains(t, buf.String(), `"trace_id":"trace-grpc-test"`)
	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
}

func TestInterceptors_GeneratesTraceID(t *testing.T) {
	client := startServer(t, NewHandler(nil, logger.Nop()))

	var header metadata.MD
	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{}, grpc.Header(&header))
	require.NoError(t, err)

	require.Len(t, header.Get(traceIDKey), 1)
	assert.NotEmpty(t, header.Get(traceIDKey)[0])
}

func TestInterceptors_UnknownServiceCode(t *testing.T) {
	var buf bytes.Buffer
	client := startServer(t, NewHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)}))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "billing"})
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"code":"NotFound"`)
}
