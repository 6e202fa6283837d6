package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/internal/validators"
	"github.com/MKhiriev/review-site/models"
)

// ReviewValidationService checks identifiers and review bodies before
// handing the call to the wrapped ReviewService. Every failure wraps
// ErrInvalidDataProvided.
type ReviewValidationService struct {
	inner     ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{
		validator: validators.NewReviewSiteValidator(),
	}
}

func (v *ReviewValidationService) ListItemReviews(ctx context.Context, itemID string) ([]models.Review, error) {
	if !utils.IsUUID(itemID) {
		return nil, invalid(validators.ErrInvalidItemID)
	}

	return v.inner.ListItemReviews(ctx, itemID)
}

func (v *ReviewValidationService) GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error) {
	if err := v.validator.Validate(ctx, models.Review{ID: reviewID, ItemID: itemID}, validators.FieldID, validators.FieldItemID); err != nil {
		return models.Review{}, invalid(err)
	}

	return v.inner.GetReview(ctx, itemID, reviewID)
}

func (v *ReviewValidationService) ListUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	if !utils.IsUUID(userID) {
		return nil, invalid(validators.ErrInvalidUserID)
	}

	return v.inner.ListUserReviews(ctx, userID)
}

func (v *ReviewValidationService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := v.validator.Validate(ctx, review); err != nil {
		return models.Review{}, invalid(err)
	}

	return v.inner.CreateReview(ctx, review)
}

func (v *ReviewValidationService) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := v.validator.Validate(ctx, review, validators.FieldID, validators.FieldUserID, validators.FieldText); err != nil {
		return models.Review{}, invalid(err)
	}

	return v.inner.UpdateReview(ctx, review)
}

func (v *ReviewValidationService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if err := v.validator.Validate(ctx, models.Review{ID: reviewID, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return invalid(err)
	}

	return v.inner.DeleteReview(ctx, userID, reviewID)
}

func (v *ReviewValidationService) Wrap(wrapped ReviewService) ReviewService {
	v.inner = wrapped
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
