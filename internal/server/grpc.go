package server

import (
	"context"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/participant-tracker/internal/config"
	myGRPC "github.com/MKhiriev/participant-tracker/internal/handler/grpc"
	"github.com/MKhiriev/participant-tracker/internal/logger"
)

const probeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	address string

	stopProbe chan struct{}
	stopOnce  sync.Once

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler:   handler,
		server:    server,
		address:   cfg.GRPCAddress,
		stopProbe: make(chan struct{}),
		logger:    logger,
	}
}

func (g *grpcServer) RunServer() {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC listen failed")
		return
	}

	go g.probeLoop()

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server stopped")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.stopOnce.Do(func() { close(g.stopProbe) })
	g.handler.Shutdown()
	g.server.GracefulStop()
}

// probeLoop refreshes the health status until Shutdown.
func (g *grpcServer) probeLoop() {
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), probeInterval/3)
		g.handler.Probe(ctx)
		cancel()

		select {
		case <-g.stopProbe:
			return
		case <-ticker.C:
		}
	}
}
