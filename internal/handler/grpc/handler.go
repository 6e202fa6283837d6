// Package grpc exposes the server's gRPC surface: the standard
// grpc.health.v1.Health service backed by a database ping, server
// reflection and a zerolog request-logging interceptor.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/service"
)

// ServiceName is the name health checks may ask for besides the empty
// (whole server) name.
const ServiceName = "reviewsite.ReviewSite"

// Handler is the root gRPC transport handler. It is created once at startup
// and shared by the gRPC server.
type Handler struct {
	healthpb.UnimplementedHealthServer

	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the health service and reflection to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
	reflection.Register(s)
}

// Check reports SERVING while the database answers pings and NOT_SERVING
// otherwise. Unknown service names yield codes.NotFound, as the health
// protocol requires.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := h.services.HealthService.Check(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
