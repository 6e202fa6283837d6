package store

import (
	"context"

	"github.com/MKhiriev/review-site/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// IDGenerator produces identifiers for newly inserted rows.
type IDGenerator interface {
	Generate() string
}

// UserRepository persists registered accounts. Password is always the
// bcrypt hash, never the raw secret.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ItemRepository reads the catalog. Items are created by migrations only.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string) (models.Item, error)
}

// ReviewRepository stores reviews. Update and Delete only touch rows owned
// by the given user.
type ReviewRepository interface {
	ListReviewsByItem(ctx context.Context, itemID string) ([]models.Review, error)
	GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error)
	ListReviewsByUser(ctx context.Context, userID string) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	// DeleteReview removes the review and all of its comments in one
	// transaction.
	DeleteReview(ctx context.Context, userID, reviewID string) error
}

// CommentRepository stores comments on reviews. Update and Delete only touch
// rows owned by the given user.
type CommentRepository interface {
	ListCommentsByReview(ctx context.Context, itemID, reviewID string) ([]models.Comment, error)
	ListCommentsByUser(ctx context.Context, userID string) ([]models.Comment, error)
	// CreateComment fails with ErrReviewNotFound unless the review belongs to
	// itemID.
	CreateComment(ctx context.Context, itemID string, comment models.Comment) (models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
}

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
