package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// vaultBucket holds every key written by the bolt backend.
var vaultBucket = []byte("vault")

const boltOpenTimeout = 5 * time.Second

type boltKVStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltKVStore opens (or creates) a bbolt database file at path. The file
// is locked for the lifetime of the store, so a second process opening the
// same vault blocks for up to boltOpenTimeout and then fails.
func NewBoltKVStore(path string, log *logger.Logger) (KVStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "NewBoltKVStore").Msg("error creating database directory")
		return nil, fmt.Errorf("%w: create vault directory: %w", ErrStoreUnavailable, err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewBoltKVStore").Msg("error opening bolt database")
		return nil, fmt.Errorf("%w: open bolt database: %w", ErrStoreUnavailable, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(vaultBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewBoltKVStore").Msg("error creating vault bucket")
		return nil, fmt.Errorf("%w: create vault bucket: %w", ErrStoreUnavailable, err)
	}

	log.Debug().Str("func", "NewBoltKVStore").Str("path", path).Msg("opened bolt database")
	return &boltKVStore{db: db, logger: log}, nil
}

func (s *boltKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(vaultBucket)
		if b == nil {
			return nil
		}
		// bytes returned by Get are only valid inside the transaction
		if v := b.Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, s.wrap(ctx, "Get", err)
	}
	return value, found, nil
}

func (s *boltKVStore) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(vaultBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return s.wrap(ctx, "Set", err)
	}
	return nil
}

func (s *boltKVStore) Close() error {
	return s.db.Close()
}

func (s *boltKVStore) wrap(ctx context.Context, op string, err error) error {
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return ErrStoreClosed
	}
	logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*boltKVStore."+op).Msg("bolt transaction failed")
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
