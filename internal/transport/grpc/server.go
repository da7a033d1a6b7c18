package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	pb "habit-reminder/proto/reminder/v1"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ServiceName is the health service name reported next to the overall status.
var ServiceName = pb.ReminderService_ServiceDesc.ServiceName

// Server represents a gRPC server
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	logger     *zap.Logger
	port       int
}

// NewServer creates a new gRPC server exposing the reminder service, health
// and reflection
func NewServer(handler *ReminderHandler, port int, logger *zap.Logger) *Server {
	logger = logger.With(zap.String("component", "grpc"))

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(LoggingInterceptor(logger)),
	)

	pb.RegisterReminderServiceServer(grpcServer, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
		port:       port,
	}
}

// Start starts the gRPC server
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	return s.Serve(listener)
}

// Serve accepts connections on listener until Stop is called
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("gRPC server listening", zap.String("addr", listener.Addr().String()))

	if err := s.grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// SetServing switches the reported health status
func (s *Server) SetServing(serving bool) {
	st := grpc_health_v1.HealthCheckResponse_SERVING
	if !serving {
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Stop reports NOT_SERVING and gracefully stops the gRPC server
func (s *Server) Stop() {
	s.logger.Info("gracefully stopping gRPC server...")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
	s.logger.Info("gRPC server stopped")
}

// LoggingInterceptor logs every unary call with its status code and latency
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Warn("gRPC request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("gRPC request", fields...)
		}

		return resp, err
	}
}
