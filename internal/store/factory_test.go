package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		dsn          string
		wantBackend  Backend
		wantLocation string
	}{
		{dsn: "", wantBackend: BackendMemory},
		{dsn: ":memory:", wantBackend: BackendMemory},
		{dsn: "bolt:///home/me/vault.bolt", wantBackend: BackendBolt, wantLocation: "/home/me/vault.bolt"},
		{dsn: "bolt://vault.bolt", wantBackend: BackendBolt, wantLocation: "vault.bolt"},
		{dsn: "postgres://u:p@localhost/vault", wantBackend: BackendPostgres, wantLocation: "postgres://u:p@localhost/vault"},
		{dsn: "postgresql://localhost/vault", wantBackend: BackendPostgres, wantLocation: "postgresql://localhost/vault"},
		{dsn: "/home/me/vault.db", wantBackend: BackendSQLite, wantLocation: "/home/me/vault.db"},
		{dsn: "file:vault.db?_busy_timeout=5000", wantBackend: BackendSQLite, wantLocation: "file:vault.db?_busy_timeout=5000"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			backend, location := ParseDSN(tt.dsn)
			assert.Equal(t, tt.wantBackend, backend)
			assert.Equal(t, tt.wantLocation, location)
		})
	}
}

func TestNewKVStore_Memory(t *testing.T) {
	s, err := NewKVStore(context.Background(), config.Storage{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &memoryKVStore{}, s)
}

func TestNewKVStore_Bolt(t *testing.T) {
	dsn := "bolt://" + filepath.Join(t.TempDir(), "vault.bolt")

	s, err := NewKVStore(context.Background(), config.Storage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &boltKVStore{}, s)
	require.NoError(t, s.Set(context.Background(), "k", "v"))
}

func TestNewKVStore_PostgresUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewKVStore(ctx, config.Storage{DSN: "postgres://nobody@127.0.0.1:1/none?connect_timeout=1"}, logger.Nop())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
