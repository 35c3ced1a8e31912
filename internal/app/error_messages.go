// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of go-note-vault.
//
// All Msg* constants are human-readable strings shown by the TUI. MessageFor
// turns any error returned by the vault session into exactly one of them, so
// the screen never shows driver errors or crypto internals.
package app

import (
	"errors"

	"github.com/MKhiriev/go-note-vault/internal/session"
	"github.com/MKhiriev/go-note-vault/internal/store"
)

const (
	// MsgEmptyPassword is shown when the unlock form is submitted blank.
	MsgEmptyPassword = "password must not be empty"

	// MsgUnlockFailed is shown for a wrong password and for a damaged vault
	// alike.
	MsgUnlockFailed = "invalid password or corrupted vault"

	// MsgValidation is shown when a new entry has a blank title or content.
	MsgValidation = "title and content are required"

	// MsgLocked is shown when an edit reaches a session that auto-locked in
	// the meantime.
	MsgLocked = "vault is locked, unlock it first"

	// MsgAlreadyUnlocked is shown on a repeated unlock.
	MsgAlreadyUnlocked = "vault is already unlocked"

	// MsgStoreUnavailable is shown when the vault file or database cannot be
	// read or written.
	MsgStoreUnavailable = "vault storage is unavailable, see log for details"

	// MsgClipboardUnavailable is shown when copying to the clipboard fails.
	MsgClipboardUnavailable = "clipboard is unavailable"

	// MsgUnexpected covers everything else.
	MsgUnexpected = "unexpected error, see log for details"
)

// MessageFor maps err to a single user-facing message. A nil error maps to
// the empty string.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrEmptyPassword):
		return MsgEmptyPassword
	case errors.Is(err, session.ErrUnlockFailed):
		return MsgUnlockFailed
	case errors.Is(err, session.ErrValidation):
		return MsgValidation
	case errors.Is(err, session.ErrLocked):
		return MsgLocked
	case errors.Is(err, session.ErrAlreadyUnlocked):
		return MsgAlreadyUnlocked
	case errors.Is(err, store.ErrStoreUnavailable), errors.Is(err, store.ErrStoreClosed):
		return MsgStoreUnavailable
	default:
		return MsgUnexpected
	}
}
