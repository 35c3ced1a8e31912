// Package store persists the vault salt and sealed envelope in a key/value
// backend selected by DSN: memory, bbolt, SQLite or PostgreSQL.
package store

import "context"

// KVStore is the persistence collaborator of the vault session: a flat
// string key/value space holding the salt and the sealed envelope.
//
// Get reports found=false with a nil error when the key has never been set.
// Set overwrites any previous value atomically from the caller's point of
// view.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/kv_store_mock.go -package=mock
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
