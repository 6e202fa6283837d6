package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/store"
)

type healthService struct {
	checker store.HealthChecker

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

// Check pings the database. A nil checker is reported as unhealthy.
func (s *healthService) Check(ctx context.Context) error {
	if s.checker == nil {
		return ErrStorageUnavailable
	}

	if err := s.checker.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
