package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, empty DSN or the salt and envelope sharing one key).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings (for
	// example, a KDF round count below the minimum).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
