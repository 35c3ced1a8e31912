package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-vault/internal/logger"
)

const (
	kvTable       = "vault_kv"
	kvNameColumn  = "name"
	kvValueColumn = "value"

	upsertKVSuffix = "ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP"
)

// defaultRetryIntervals are the pauses between attempts for errors the
// classifier marks as Retryable. len+1 attempts are made in total.
var defaultRetryIntervals = []time.Duration{
	100 * time.Millisecond,
	300 * time.Millisecond,
	500 * time.Millisecond,
}

// sqlKVStore keeps every key as one row of the vault_kv table. The same code
// serves sqlite and PostgreSQL; only the placeholder format differs.
type sqlKVStore struct {
	db             *DB
	builder        sq.StatementBuilderType
	retryIntervals []time.Duration
	logger         *logger.Logger
}

// NewSQLKVStore wraps an already connected and migrated *DB.
func NewSQLKVStore(db *DB, log *logger.Logger) KVStore {
	log.Debug().Str("func", "NewSQLKVStore").Str("dialect", string(db.Dialect())).Msg("creating sql kv store")
	return &sqlKVStore{
		db:             db,
		builder:        db.statementBuilder(),
		retryIntervals: defaultRetryIntervals,
		logger:         log,
	}
}

func (s *sqlKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.builder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvNameColumn: key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var (
		value string
		found bool
	)
	err = s.withRetry(ctx, "Get", func() error {
		rows, queryErr := s.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		found = rows.Next()
		if found {
			if scanErr := rows.Scan(&value); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return value, found, nil
}

func (s *sqlKVStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.builder.
		Insert(kvTable).
		Columns(kvNameColumn, kvValueColumn).
		Values(key, value).
		Suffix(upsertKVSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, "Set", func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKVStore) Close() error {
	return s.db.Close()
}

// withRetry runs fn until it succeeds, fails with a non-retryable error, the
// retry intervals are exhausted or ctx is done.
func (s *sqlKVStore) withRetry(ctx context.Context, op string, fn func() error) error {
	log := logger.FromContextOr(ctx, s.logger)

	err := fn()
	for attempt, pause := range s.retryIntervals {
		if err == nil || s.db.errorClassificator.Classify(err) != Retryable {
			break
		}
		log.Warn().Err(err).
			Str("func", "*sqlKVStore."+op).
			Int("attempt", attempt+1).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(pause):
		}
		err = fn()
	}

	if err != nil {
		log.Err(err).Str("func", "*sqlKVStore."+op).Msg("database operation failed")
	}
	return err
}
