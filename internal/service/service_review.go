package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/models"
)

// reviewService passes review operations through to the repository and logs
// failures. Input checks live in [ReviewValidationService].
type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

func (s *reviewService) ListItemReviews(ctx context.Context, itemID string) ([]models.Review, error) {
	return s.reviewRepository.ListReviewsByItem(ctx, itemID)
}

func (s *reviewService) GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error) {
	return s.reviewRepository.GetReview(ctx, itemID, reviewID)
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviewRepository.ListReviewsByUser(ctx, userID)
}

func (s *reviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	created, err := s.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("user_id", review.UserID).
			Str("item_id", review.ItemID).
			Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return created, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	updated, err := s.reviewRepository.UpdateReview(ctx, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", review.ID).Msg("review update ended with error")
		return models.Review{}, fmt.Errorf("review update ended with error: %w", err)
	}

	return updated, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if err := s.reviewRepository.DeleteReview(ctx, userID, reviewID); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", reviewID).Msg("review deletion ended with error")
		return fmt.Errorf("review deletion ended with error: %w", err)
	}

	return nil
}
