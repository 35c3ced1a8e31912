package crypto

// KeyDerivation turns a master password and the vault's persisted salt into
// the symmetric key used for the whole session.
//
// Derivation is deterministic: the same password and salt always yield the
// same key, which is what makes unlocking across process restarts possible.
// It is deliberately slow.
type KeyDerivation interface {
	// GenerateSalt returns SaltSize fresh bytes from the OS CSPRNG. It is
	// called once per vault, on the very first unlock.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches password with salt into a KeySize-byte key.
	// Returns ErrInvalidSalt if salt is not exactly SaltSize bytes. An empty
	// password is accepted here; rejecting it is the caller's job.
	DeriveKey(password string, salt []byte) (*DerivedKey, error)
}

// AuthenticatedCipher seals and opens the vault payload.
//
// An envelope is base64(nonce ‖ ciphertext ‖ tag) and carries everything
// needed to open it except the key.
type AuthenticatedCipher interface {
	// Seal encrypts plaintext under key with a fresh random nonce and returns
	// the encoded envelope.
	Seal(key *DerivedKey, plaintext []byte) (string, error)

	// Open verifies and decrypts envelope. Any failure caused by the envelope
	// itself (bad base64, too short, tag mismatch) is reported as
	// ErrAuthenticationFailure; wrong key and corrupted data are
	// indistinguishable.
	Open(key *DerivedKey, envelope string) ([]byte, error)
}
