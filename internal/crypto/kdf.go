// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto derives the vault key from the master password and seals
// the entry payload with AES-256-GCM.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the per-vault salt in bytes.
	SaltSize = 16
	// KeySize is the length of the derived AES-256 key in bytes.
	KeySize = 32
	// DefaultIterations is the PBKDF2-HMAC-SHA256 round count used unless
	// configured otherwise.
	DefaultIterations = 250_000
)

// pbkdf2KeyDerivation is the private implementation of [KeyDerivation].
type pbkdf2KeyDerivation struct {
	iterations int
	rand       io.Reader
}

// NewKeyDerivation constructs a [KeyDerivation] backed by
// PBKDF2-HMAC-SHA256. A non-positive iterations value selects
// [DefaultIterations].
func NewKeyDerivation(iterations int) KeyDerivation {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &pbkdf2KeyDerivation{
		iterations: iterations,
		rand:       rand.Reader,
	}
}

// GenerateSalt implements [KeyDerivation].
func (d *pbkdf2KeyDerivation) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(d.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyDerivation].
func (d *pbkdf2KeyDerivation) DeriveKey(password string, salt []byte) (*DerivedKey, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	secret := []byte(password)
	defer Zeroize(secret)

	raw := pbkdf2.Key(secret, salt, d.iterations, KeySize, sha256.New)
	return newDerivedKey(raw), nil
}
