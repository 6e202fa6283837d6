package service

import (
	"context"

	"github.com/MKhiriev/review-site/internal/config"
	"github.com/MKhiriev/review-site/internal/logger"
)

// versionService answers GET /api/version with the version resolved once
// at startup: APP_VERSION, else the linker build version, else "dev".
type versionService struct {
	version string
}

// NewAppInfoService requires cfg.Version to be resolved already; cmd/server
// applies the fallbacks before wiring services.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("func", "NewAppInfoService").Str("version", cfg.Version).Msg("review-site version resolved")

	return &versionService{version: cfg.Version}, nil
}

func (s *versionService) GetAppVersion(_ context.Context) string {
	return s.version
}
