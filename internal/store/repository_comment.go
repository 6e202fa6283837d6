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

var commentColumns = []string{"id", "txt", "user_id", "review_id"}

const commentReturning = "RETURNING id, txt, user_id, review_id"

// commentRepository is the database/sql implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, ids IDGenerator, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// ListCommentsByReview returns the comments of a review, provided the review
// is attached to itemID. A mismatch yields an empty list.
func (r *commentRepository) ListCommentsByReview(ctx context.Context, itemID, reviewID string) ([]models.Comment, error) {
	query, args, err := r.db.builder.
		Select("c.id", "c.txt", "c.user_id", "c.review_id").
		From("comments c").
		Join("reviews r ON r.id = c.review_id").
		Where(sq.Eq{"r.id": reviewID, "r.item_id": itemID}).
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*commentRepository.ListCommentsByReview", query, args)
}

func (r *commentRepository) ListCommentsByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	query, args, err := r.db.builder.
		Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*commentRepository.ListCommentsByUser", query, args)
}

// CreateComment inserts the comment under a new id after checking, in the
// same transaction, that comment.ReviewID is a review of itemID.
//
// Error handling:
//   - review missing or attached to another item → [ErrReviewNotFound].
//   - unique (user_id, review_id) violation → [ErrDuplicateComment].
//   - unknown user → [ErrReferenceNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, itemID string, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	checkReview, checkArgs, err := r.db.builder.
		Select("id").
		From(models.Review{}.TableName()).
		Where(sq.Eq{"id": comment.ReviewID, "item_id": itemID}).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insert, insertArgs, err := r.db.builder.
		Insert(comment.TableName()).
		Columns(commentColumns...).
		Values(r.ids.Generate(), comment.Text, comment.UserID, comment.ReviewID).
		Suffix(commentReturning).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error beginning transaction")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var reviewID string
	err = tx.QueryRowContext(ctx, checkReview, checkArgs...).Scan(&reviewID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrReviewNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error checking review")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := scanComment(tx.QueryRowContext(ctx, insert, insertArgs...))
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, mapWriteError(err, ErrDuplicateComment)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error committing transaction")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// UpdateComment rewrites the text of comment.ID if it is owned by
// comment.UserID, otherwise returns [ErrCommentNotFound].
func (r *commentRepository) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(comment.TableName()).
		Set("txt", comment.Text).
		Where(sq.Eq{"id": comment.ID, "user_id": comment.UserID}).
		Suffix(commentReturning).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error updating comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteComment removes comment commentID if it is owned by userID.
func (r *commentRepository) DeleteComment(ctx context.Context, userID, commentID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Comment{}.TableName()).
		Where(sq.Eq{"id": commentID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func (r *commentRepository) list(ctx context.Context, funcName, query string, args []any) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func scanComment(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	err := row.Scan(&comment.ID, &comment.Text, &comment.UserID, &comment.ReviewID)
	return comment, err
}
