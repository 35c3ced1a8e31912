// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the vault lifecycle: a single VaultSession that
// moves between Locked, Unlocking and Unlocked, owns the derived key while
// unlocked, and rewrites the whole sealed envelope on every mutation.
//
// Unlock, AddEntry, DeleteEntry and Lock run one at a time. State and Entries
// never wait for an in-flight operation, so a UI can keep rendering while a
// slow key derivation is running.
//
// AutoLockJob locks an idle session in the background.
package session
