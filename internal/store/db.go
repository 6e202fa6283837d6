package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/review-site/internal/config"
	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/migrations"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB is the pooled connection handle shared by every repository.
// It remembers which driver it was opened with so statements are built
// with the matching placeholder format.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewConnect opens the database described by cfg and pings it.
//
// A "postgres://" or "postgresql://" DSN is served by pgx, anything else by
// SQLite with foreign key enforcement switched on.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dsn := driverForDSN(cfg.DSN)

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if driver == DriverSQLite && isSQLiteMemory(dsn) {
		// every new connection to :memory: is a separate empty database
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			conn.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			conn.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	return newDB(conn, driver, log), nil
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations using the goose dialect
// matching the driver.
func (db *DB) Migrate() error {
	dialect := migrations.DialectSQLite
	if db.driver == DriverPostgres {
		dialect = migrations.DialectPostgres
	}

	if err := migrations.Migrate(db.DB, dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	return nil
}

func driverForDSN(dsn string) (driver string, normalized string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres, dsn
	}

	if !strings.Contains(dsn, "_foreign_keys=") && !strings.Contains(dsn, "_fk=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}

	return DriverSQLite, dsn
}

func isSQLiteMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
