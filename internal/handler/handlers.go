// Package handler builds the transport handlers enabled by configuration.
package handler

import (
	"github.com/MKhiriev/review-site/internal/config"
	"github.com/MKhiriev/review-site/internal/handler/grpc"
	"github.com/MKhiriev/review-site/internal/handler/http"
	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/service"
)

// Handlers holds one handler per enabled transport; a disabled transport
// leaves its field nil.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("transport handlers created")

	return handlers, nil
}
