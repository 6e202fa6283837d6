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

var reviewColumns = []string{"id", "txt", "rating", "user_id", "item_id"}

const reviewReturning = "RETURNING id, txt, rating, user_id, item_id"

// reviewRepository is the database/sql implementation of [ReviewRepository].
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewReviewRepository constructs a [ReviewRepository] backed by db.
func NewReviewRepository(db *DB, ids IDGenerator, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *reviewRepository) ListReviewsByItem(ctx context.Context, itemID string) ([]models.Review, error) {
	return r.list(ctx, "*reviewRepository.ListReviewsByItem", sq.Eq{"item_id": itemID})
}

func (r *reviewRepository) ListReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return r.list(ctx, "*reviewRepository.ListReviewsByUser", sq.Eq{"user_id": userID})
}

// GetReview returns the review only when it is attached to itemID.
func (r *reviewRepository) GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(sq.Eq{"id": reviewID, "item_id": itemID}).
		ToSql()
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	review, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReview").Msg("error selecting review")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return review, nil
}

// CreateReview inserts the review under a new id.
//
// Error handling:
//   - unique (user_id, item_id) violation → [ErrDuplicateReview].
//   - unknown item or user → [ErrReferenceNotFound].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(review.TableName()).
		Columns(reviewColumns...).
		Values(r.ids.Generate(), review.Text, review.Rating, review.UserID, review.ItemID).
		Suffix(reviewReturning).
		ToSql()
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error inserting review")
		return models.Review{}, mapWriteError(err, ErrDuplicateReview)
	}

	return created, nil
}

// UpdateReview rewrites text and rating of the review identified by
// review.ID, provided it is owned by review.UserID. Otherwise
// [ErrReviewNotFound] is returned and nothing changes.
func (r *reviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(review.TableName()).
		Set("txt", review.Text).
		Set("rating", review.Rating).
		Where(sq.Eq{"id": review.ID, "user_id": review.UserID}).
		Suffix(reviewReturning).
		ToSql()
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("error updating review")
		return models.Review{}, mapWriteError(err, ErrDuplicateReview)
	}

	return updated, nil
}

// DeleteReview removes the caller's review together with its comments.
// Both statements run in one transaction; comments are only touched when
// the review exists and belongs to userID.
func (r *reviewRepository) DeleteReview(ctx context.Context, userID, reviewID string) error {
	log := logger.FromContext(ctx)

	deleteComments, commentArgs, err := r.db.builder.
		Delete(models.Comment{}.TableName()).
		Where(sq.Expr("review_id IN (SELECT id FROM reviews WHERE id = ? AND user_id = ?)", reviewID, userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteReview, reviewArgs, err := r.db.builder.
		Delete(models.Review{}.TableName()).
		Where(sq.Eq{"id": reviewID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteComments, commentArgs...); err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error deleting comments")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteReview, reviewArgs...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error deleting review")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *reviewRepository) list(ctx context.Context, funcName string, where sq.Eq) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reviews = append(reviews, review)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (models.Review, error) {
	var review models.Review
	err := row.Scan(&review.ID, &review.Text, &review.Rating, &review.UserID, &review.ItemID)
	return review, err
}
