package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/models"
)

var itemColumns = []string{"id", "name", "description"}

type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs a read-only [ItemRepository].
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// ListItems returns the whole catalog ordered by name. An empty catalog is
// an empty, non-nil slice.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error selecting items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err = rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// GetItem returns a single item or [ErrItemNotFound].
func (r *itemRepository) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name, &item.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error selecting item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}
