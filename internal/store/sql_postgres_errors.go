package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells withRetry whether a failed KV read or upsert is
// worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the default: the statement will fail the same way again.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient faults of the connection or of a concurrent
	// writer.
	Retryable
)

// retryablePgCodes are the SQLSTATEs a single-row vault_kv select or upsert
// can recover from: the connection dropping, the server restarting, or a
// second writer on the same key row.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {}, // 08000
	pgerrcode.ConnectionDoesNotExist: {}, // 08003
	pgerrcode.ConnectionFailure:      {}, // 08006
	pgerrcode.SerializationFailure:   {}, // 40001
	pgerrcode.DeadlockDetected:       {}, // 40P01
	pgerrcode.AdminShutdown:          {}, // 57P01
	pgerrcode.CannotConnectNow:       {}, // 57P03
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports Retryable only for a *pgconn.PgError whose code is in
// retryablePgCodes. Schema, constraint and data errors mean the migration
// did not run or the value is unusable, so they fail at once.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
