package store

import (
	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/utils"
)

// Storages bundles every repository built on top of one shared [DB].
type Storages struct {
	UserRepository    UserRepository
	ItemRepository    ItemRepository
	ReviewRepository  ReviewRepository
	CommentRepository CommentRepository
	HealthChecker     HealthChecker
}

// NewStorages builds all repositories over db. New rows get UUIDv7 ids.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:    NewUserRepository(db, ids, log),
		ItemRepository:    NewItemRepository(db, log),
		ReviewRepository:  NewReviewRepository(db, ids, log),
		CommentRepository: NewCommentRepository(db, ids, log),
		HealthChecker:     db,
	}
}
