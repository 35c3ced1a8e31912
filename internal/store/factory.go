package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
)

const (
	memoryDSN      = ":memory:"
	boltScheme     = "bolt://"
	postgresScheme = "postgres://"
	postgresAlias  = "postgresql://"
)

// Backend names the KVStore implementation selected for a DSN.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendBolt     Backend = "bolt"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// ParseDSN maps a storage DSN onto a backend and the location that backend
// understands (a file path for bolt and sqlite, the DSN itself for
// PostgreSQL).
func ParseDSN(dsn string) (Backend, string) {
	switch {
	case dsn == "" || dsn == memoryDSN:
		return BackendMemory, ""
	case strings.HasPrefix(dsn, boltScheme):
		return BackendBolt, strings.TrimPrefix(dsn, boltScheme)
	case strings.HasPrefix(dsn, postgresScheme), strings.HasPrefix(dsn, postgresAlias):
		return BackendPostgres, dsn
	default:
		return BackendSQLite, dsn
	}
}

// NewKVStore opens the backend named by cfg.DSN. SQL backends are migrated
// before the store is returned. Every failure wraps [ErrStoreUnavailable].
func NewKVStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (KVStore, error) {
	backend, location := ParseDSN(cfg.DSN)
	log.Info().Str("func", "NewKVStore").Str("backend", string(backend)).Msg("creating kv store...")

	switch backend {
	case BackendMemory:
		return NewMemoryKVStore(), nil
	case BackendBolt:
		return NewBoltKVStore(location, log)
	}

	var (
		db  *DB
		err error
	)
	if backend == BackendPostgres {
		db, err = NewConnectPostgres(ctx, location, log)
	} else {
		db, err = NewConnectSQLite(ctx, location, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s connection error: %w", ErrStoreUnavailable, backend, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewKVStore").Msg("migration failed")
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStoreUnavailable, err)
	}

	return NewSQLKVStore(db, log), nil
}
