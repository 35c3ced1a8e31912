// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the vault
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: key-derivation cost, idle
	// auto-lock and the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence backend location and the two keys the
	// vault occupies in it.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// KDFIterations is the PBKDF2-HMAC-SHA256 round count used to derive the
	// vault key. Changing it for an existing vault makes the stored envelope
	// undecryptable, so it should be set once.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// AutoLockAfter locks the vault after this long without user activity
	// (e.g. "5m"). A negative value disables auto-lock; zero selects the
	// default.
	// Env: APP_AUTO_LOCK_AFTER
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`

	// LogFile is the file the client appends its JSON log to. The terminal is
	// owned by the TUI, so logs never go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage holds the key-value persistence settings.
type Storage struct {
	// DSN selects and locates the backend:
	//   - ":memory:"                 process-local, lost on exit;
	//   - "bolt:///path/vault.bolt"  bbolt file;
	//   - "postgres://..."           PostgreSQL;
	//   - anything else              SQLite database file path.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// SaltKey is the key under which the base64 salt is stored.
	// Env: STORAGE_SALT_KEY
	SaltKey string `env:"SALT_KEY"`

	// EnvelopeKey is the key under which the sealed envelope is stored.
	// Env: STORAGE_ENVELOPE_KEY
	EnvelopeKey string `env:"ENVELOPE_KEY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources (see package doc for priority).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
