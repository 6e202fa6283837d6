package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/internal/validators"
	"github.com/MKhiriev/review-site/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.itemRepository.ListItems(ctx)
}

func (s *itemService) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	if !utils.IsUUID(itemID) {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidItemID)
	}

	return s.itemRepository.GetItem(ctx, itemID)
}
