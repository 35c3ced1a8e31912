package crypto

import "errors"

var (
	// ErrAuthenticationFailure is returned by Open when the envelope cannot be
	// authenticated: wrong key, corrupted or tampered data, or an envelope
	// that is malformed (invalid base64, too short to hold nonce and tag).
	ErrAuthenticationFailure = errors.New("envelope authentication failed")

	// ErrInvalidSalt is returned when a salt is not exactly SaltSize bytes.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrInvalidKey is returned when a nil or already destroyed key is used.
	ErrInvalidKey = errors.New("invalid or destroyed key")

	// ErrKeyNotSerializable is returned when something tries to marshal a
	// DerivedKey.
	ErrKeyNotSerializable = errors.New("derived key must not be serialized")
)
