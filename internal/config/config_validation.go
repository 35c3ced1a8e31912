// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KDFIterations < crypto.DefaultIterations {
		return fmt.Errorf("%w: kdf iterations %d below minimum %d",
			ErrInvalidAppConfigs, cfg.App.KDFIterations, crypto.DefaultIterations)
	}

	if cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.SaltKey == "" || cfg.Storage.EnvelopeKey == "" {
		return fmt.Errorf("%w: salt and envelope keys are required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.SaltKey == cfg.Storage.EnvelopeKey {
		return fmt.Errorf("%w: salt and envelope keys must differ", ErrInvalidStorageConfigs)
	}

	return nil
}
