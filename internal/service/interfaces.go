package service

import (
	"context"

	"github.com/MKhiriev/review-site/models"
)

// AuthService registers users, checks credentials and issues/verifies
// identity tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.Identity, error)
	Login(ctx context.Context, user models.User) (models.Identity, error)
	CreateToken(ctx context.Context, identity models.Identity) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Identify resolves the owner of a verified token.
	Identify(ctx context.Context, userID string) (models.Identity, error)
}

type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string) (models.Item, error)
}

type ReviewService interface {
	ListItemReviews(ctx context.Context, itemID string) ([]models.Review, error)
	GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error)
	ListUserReviews(ctx context.Context, userID string) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID string) error
}

type CommentService interface {
	ListReviewComments(ctx context.Context, itemID, reviewID string) ([]models.Comment, error)
	ListUserComments(ctx context.Context, userID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, itemID string, comment models.Comment) (models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the server can reach its storage.
type HealthService interface {
	Check(ctx context.Context) error
}

// ReviewServiceWrapper defines middleware composition for ReviewService.
// Implementations wrap an existing ReviewService to add behavior such as
// validation.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}

// CommentServiceWrapper is the CommentService counterpart of
// [ReviewServiceWrapper].
type CommentServiceWrapper interface {
	Wrap(CommentService) CommentService
}
