package store

import "errors"

// Sentinel errors returned by KVStore implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable wraps every backend failure: a missing file, a
	// dropped connection, a failed migration or a driver error that survived
	// all retries.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreClosed is returned by Get and Set after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors. These are wrapped together with
// [ErrStoreUnavailable] by the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when the upsert fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when the value column cannot be scanned.
	ErrScanningRow = errors.New("failed to scan kv row")
)
