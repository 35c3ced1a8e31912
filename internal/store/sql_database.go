package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/migrations"
)

// DB is a *sql.DB bound to a dialect and to the error classifier of its
// driver.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect names the goose dialect the database was opened with.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate brings the vault_kv schema up to date.
func (db *DB) Migrate() error {
	db.logger.Debug().Str("func", "*DB.Migrate").Str("dialect", string(db.dialect)).Msg("applying migrations")
	return migrations.Migrate(db.DB, db.dialect)
}

// statementBuilder returns a squirrel builder using the bind variables of the
// dialect: $n for PostgreSQL, ? for sqlite.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
