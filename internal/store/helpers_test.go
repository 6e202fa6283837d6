package store

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/review-site/internal/logger"
)

// sequentialIDs hands out id-1, id-2, ... so inserted ids are predictable.
type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, DriverPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
