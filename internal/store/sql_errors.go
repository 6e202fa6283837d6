package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// constraintViolation is the driver-independent kind of integrity error a
// failed statement ran into.
type constraintViolation int

const (
	// noViolation covers every error that is not an integrity violation,
	// including connection failures and syntax errors.
	noViolation constraintViolation = iota

	// uniqueViolation is a UNIQUE or PRIMARY KEY clash.
	uniqueViolation

	// foreignKeyViolation is a reference to a row that does not exist.
	foreignKeyViolation
)

// classifyConstraint inspects a driver error from either pgx or go-sqlite3.
//
// PostgreSQL codes (class 23):
//   - 23505 unique_violation
//   - 23503 foreign_key_violation
//
// SQLite extended codes:
//   - SQLITE_CONSTRAINT_UNIQUE, SQLITE_CONSTRAINT_PRIMARYKEY
//   - SQLITE_CONSTRAINT_FOREIGNKEY
func classifyConstraint(err error) constraintViolation {
	if err == nil {
		return noViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return uniqueViolation
		case pgerrcode.ForeignKeyViolation:
			return foreignKeyViolation
		}
		return noViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyViolation
		}
	}

	return noViolation
}

// mapWriteError translates a failed INSERT/UPDATE into the domain error for
// the violated constraint. onUnique is returned for duplicates; any other
// error is wrapped with ErrExecutingStatement.
func mapWriteError(err error, onUnique error) error {
	switch classifyConstraint(err) {
	case uniqueViolation:
		return onUnique
	case foreignKeyViolation:
		return ErrReferenceNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
