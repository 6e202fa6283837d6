package service

import (
	"github.com/MKhiriev/review-site/internal/config"
	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/store"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	ReviewService  ReviewService
	CommentService CommentService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires every service over storages. Review and comment services
// are wrapped with their validation layers.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ItemService:    NewItemService(storages.ItemRepository, logger),
		ReviewService:  NewReviewValidationService().Wrap(NewReviewService(storages.ReviewRepository, logger)),
		CommentService: NewCommentValidationService().Wrap(NewCommentService(storages.CommentRepository, logger)),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.HealthChecker, logger),
	}, nil
}
