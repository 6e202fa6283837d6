package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/service"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

type Handler struct {
	services *service.Services
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newHTTPMetrics(),
		logger:   logger,
	}
}

// decodeJSON reads the request body into dst. Malformed documents are
// reported as ErrInvalidJSON, missing ones as utils.ErrEmptyBody.
func decodeJSON(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

// identityFrom returns the caller stored by the auth middleware.
func identityFrom(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, service.ErrInvalidToken
	}
	return identity, nil
}
