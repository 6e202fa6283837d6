package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is the parent of every "row does not exist" error. It is
	// returned for empty single-row selects and for owner-scoped updates and
	// deletes that matched no row.
	ErrNotFound = errors.New("not found")

	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
	ErrReviewNotFound  = fmt.Errorf("review %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)

	// ErrConflict is the parent of every integrity constraint violation.
	ErrConflict = errors.New("conflict")

	// ErrUsernameTaken is returned when registering a username that already
	// exists.
	ErrUsernameTaken = fmt.Errorf("%w: username is already taken", ErrConflict)

	// ErrDuplicateReview is returned when a user reviews the same item twice.
	ErrDuplicateReview = fmt.Errorf("%w: user has already reviewed this item", ErrConflict)

	// ErrDuplicateComment is returned when a user comments on the same review
	// twice.
	ErrDuplicateComment = fmt.Errorf("%w: user has already commented on this review", ErrConflict)

	// ErrReferenceNotFound is returned when a new row points at a user, item
	// or review that does not exist.
	ErrReferenceNotFound = fmt.Errorf("%w: referenced record does not exist", ErrConflict)
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
