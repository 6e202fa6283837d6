package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

func (s *commentService) ListReviewComments(ctx context.Context, itemID, reviewID string) ([]models.Comment, error) {
	return s.commentRepository.ListCommentsByReview(ctx, itemID, reviewID)
}

func (s *commentService) ListUserComments(ctx context.Context, userID string) ([]models.Comment, error) {
	return s.commentRepository.ListCommentsByUser(ctx, userID)
}

func (s *commentService) CreateComment(ctx context.Context, itemID string, comment models.Comment) (models.Comment, error) {
	created, err := s.commentRepository.CreateComment(ctx, itemID, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("user_id", comment.UserID).
			Str("review_id", comment.ReviewID).
			Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

func (s *commentService) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	updated, err := s.commentRepository.UpdateComment(ctx, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", comment.ID).Msg("comment update ended with error")
		return models.Comment{}, fmt.Errorf("comment update ended with error: %w", err)
	}

	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, userID, commentID string) error {
	if err := s.commentRepository.DeleteComment(ctx, userID, commentID); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", commentID).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}
