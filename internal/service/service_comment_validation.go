package service

import (
	"context"

	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/internal/validators"
	"github.com/MKhiriev/review-site/models"
)

// CommentValidationService checks identifiers and comment bodies before
// handing the call to the wrapped CommentService.
type CommentValidationService struct {
	inner     CommentService
	validator validators.Validator
}

func NewCommentValidationService() CommentServiceWrapper {
	return &CommentValidationService{
		validator: validators.NewReviewSiteValidator(),
	}
}

func (v *CommentValidationService) ListReviewComments(ctx context.Context, itemID, reviewID string) ([]models.Comment, error) {
	if !utils.IsUUID(itemID) {
		return nil, invalid(validators.ErrInvalidItemID)
	}
	if !utils.IsUUID(reviewID) {
		return nil, invalid(validators.ErrInvalidReviewID)
	}

	return v.inner.ListReviewComments(ctx, itemID, reviewID)
}

func (v *CommentValidationService) ListUserComments(ctx context.Context, userID string) ([]models.Comment, error) {
	if !utils.IsUUID(userID) {
		return nil, invalid(validators.ErrInvalidUserID)
	}

	return v.inner.ListUserComments(ctx, userID)
}

func (v *CommentValidationService) CreateComment(ctx context.Context, itemID string, comment models.Comment) (models.Comment, error) {
	if !utils.IsUUID(itemID) {
		return models.Comment{}, invalid(validators.ErrInvalidItemID)
	}
	if err := v.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, invalid(err)
	}

	return v.inner.CreateComment(ctx, itemID, comment)
}

func (v *CommentValidationService) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := v.validator.Validate(ctx, comment, validators.FieldID, validators.FieldUserID, validators.FieldText); err != nil {
		return models.Comment{}, invalid(err)
	}

	return v.inner.UpdateComment(ctx, comment)
}

func (v *CommentValidationService) DeleteComment(ctx context.Context, userID, commentID string) error {
	if err := v.validator.Validate(ctx, models.Comment{ID: commentID, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return invalid(err)
	}

	return v.inner.DeleteComment(ctx, userID, commentID)
}

func (v *CommentValidationService) Wrap(wrapped CommentService) CommentService {
	v.inner = wrapped
	return v
}
