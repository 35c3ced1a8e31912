package session

import "errors"

var (
	// ErrEmptyPassword is returned by Unlock when the password is empty. The
	// state is left untouched.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrUnlockFailed is returned by Unlock when the envelope cannot be opened
	// or decoded with the supplied password, or when the stored salt is
	// unusable. A wrong password and a corrupted vault are indistinguishable
	// on purpose.
	ErrUnlockFailed = errors.New("unlock failed")

	// ErrValidation is returned by AddEntry for a blank title or content.
	ErrValidation = errors.New("title and content must not be empty")

	// ErrLocked is returned by AddEntry and DeleteEntry when the session is
	// not unlocked.
	ErrLocked = errors.New("vault is locked")

	// ErrAlreadyUnlocked is returned by Unlock on an unlocked session.
	ErrAlreadyUnlocked = errors.New("vault is already unlocked")
)
