package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/migrations"
)

// DB is a catalog database connection together with the dialect specific
// query builder and error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if dialect == migrations.DialectPostgres {
		placeholder = squirrel.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// NewConnect opens the catalog database described by cfg. DSNs starting with
// postgres:// or postgresql:// use pgx, everything else is a SQLite DSN.
func NewConnect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Dialect reports which SQL dialect the connection speaks.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate applies the embedded schema and sample data.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Retryable reports whether err is a transient failure of the underlying
// database.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// Bounds of the retry loop of execRetrying.
const (
	maxExecAttempts = 3
	execRetryDelay  = 50 * time.Millisecond
)

// execRetrying runs a write statement, repeating it while the driver reports
// a transient failure. The overdue sweep and the UI share one database.
func (db *DB) execRetrying(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		result sql.Result
		err    error
	)
	for attempt := 1; attempt <= maxExecAttempts; attempt++ {
		result, err = db.DB.ExecContext(ctx, query, args...)
		if err == nil || !db.Retryable(err) || attempt == maxExecAttempts {
			return result, err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return nil, errors.Join(err, ctx.Err())
		case <-time.After(execRetryDelay * time.Duration(attempt)):
		}
	}
	return result, err
}

// setStatus updates the status column of one row of table. notFound is
// returned when no row has id.
func (db *DB) setStatus(ctx context.Context, table string, id int64, status string, notFound error) error {
	log := logger.FromContext(ctx)

	query, args, err := db.buildSetStatusQuery(table, id, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.execRetrying(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "DB.setStatus").Str("table", table).Int64("id", id).Msg("failed to update status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	log.Debug().Str("func", "DB.setStatus").Str("table", table).Int64("id", id).Str("status", status).Msg("status updated")
	return nil
}

func (db *DB) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
