package grpchealth

import (
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"shipping/pkg/logger"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second

	// ServiceName под этим именем балансировщик проверяет HTTP API
	ServiceName = "shipping.v1.API"
)

// Server отдаёт grpc.health.v1 для оркестратора, бизнес-вызовов по gRPC нет.
type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func NewServer(log logger.Logger) *Server {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: healthServer,
	}
}

// SetServing вызывается после поднятия всех зависимостей.
func (s *Server) SetServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing вызывается в начале graceful shutdown, вместе с закрытием /healthcheck.
func (s *Server) SetNotServing() {
	s.health.Shutdown()
}

func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("grpc health server starting", logger.NewField("addr", lis.Addr().String()))

	if err := s.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

func (s *Server) GracefulStop() {
	s.server.GracefulStop()
	s.log.Info("grpc health server stopped")
}
