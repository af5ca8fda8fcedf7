package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may succeed when
// executed again.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not known to be
	// transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures: lost connections, rolled back
	// transactions and busy databases.
	Retryable
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies errors returned through pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify looks at the SQLSTATE of a *pgconn.PgError. Anything else,
// including nil, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.LockNotAvailable:
		return Retryable
	}
	return NonRetryable
}
