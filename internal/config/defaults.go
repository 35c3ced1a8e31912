package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/crypto"
)

const (
	appDirName = "go-note-vault"

	// DefaultSaltKey is the storage key of the vault salt.
	DefaultSaltKey = "vault.salt"
	// DefaultEnvelopeKey is the storage key of the sealed entry collection.
	DefaultEnvelopeKey = "vault.envelope"
	// DefaultAutoLockAfter is the idle period after which the vault locks.
	DefaultAutoLockAfter = 5 * time.Minute
)

// defaultConfig returns the lowest-priority layer: values used when no other
// source sets a field. Files live under the user's config directory, falling
// back to the working directory when it cannot be determined.
func defaultConfig() *StructuredConfig {
	baseDir, err := os.UserConfigDir()
	if err != nil || baseDir == "" {
		baseDir = "."
	}
	dir := filepath.Join(baseDir, appDirName)

	return &StructuredConfig{
		App: App{
			KDFIterations: crypto.DefaultIterations,
			AutoLockAfter: DefaultAutoLockAfter,
			LogFile:       filepath.Join(dir, "vault.log"),
		},
		Storage: Storage{
			DSN:         filepath.Join(dir, "vault.db"),
			SaltKey:     DefaultSaltKey,
			EnvelopeKey: DefaultEnvelopeKey,
		},
	}
}
