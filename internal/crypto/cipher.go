// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// NonceSize is the GCM nonce length prepended to every envelope.
	NonceSize = 12
	// TagSize is the GCM authentication tag length appended by Seal.
	TagSize = 16
)

// aesGCMCipher is the private implementation of [AuthenticatedCipher].
type aesGCMCipher struct {
	rand io.Reader
}

// NewAuthenticatedCipher constructs an [AuthenticatedCipher] using
// AES-256-GCM with 12-byte random nonces read from the OS CSPRNG.
func NewAuthenticatedCipher() AuthenticatedCipher {
	return &aesGCMCipher{rand: rand.Reader}
}

// Seal implements [AuthenticatedCipher]. The output is a Base64 (standard
// encoding) string of the blob: nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes).
func (c *aesGCMCipher) Seal(key *DerivedKey, plaintext []byte) (string, error) {
	var envelope string

	err := key.withBytes(func(raw []byte) error {
		gcm, err := newGCM(raw)
		if err != nil {
			return err
		}

		nonce := make([]byte, NonceSize)
		if _, err := io.ReadFull(c.rand, nonce); err != nil {
			return fmt.Errorf("generate nonce: %w", err)
		}

		// Seal appends ciphertext‖tag to the nonce slice.
		blob := gcm.Seal(nonce, nonce, plaintext, nil)
		envelope = base64.StdEncoding.EncodeToString(blob)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("seal envelope: %w", err)
	}

	return envelope, nil
}

// Open implements [AuthenticatedCipher].
func (c *aesGCMCipher) Open(key *DerivedKey, envelope string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return nil, fmt.Errorf("decode envelope: %w", ErrAuthenticationFailure)
	}
	if len(blob) < NonceSize+TagSize {
		return nil, fmt.Errorf("envelope too short: %w", ErrAuthenticationFailure)
	}

	var plaintext []byte
	err = key.withBytes(func(raw []byte) error {
		gcm, err := newGCM(raw)
		if err != nil {
			return err
		}

		nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
		plaintext, err = gcm.Open(nil, nonce, ciphertext, nil)
		if err != nil {
			return ErrAuthenticationFailure
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("open envelope: %w", err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
