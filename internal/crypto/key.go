// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "sync"

const redacted = "[REDACTED]"

// DerivedKey holds the 256-bit session key. The raw bytes never leave this
// package: callers can only pass the key back into [AuthenticatedCipher] or
// destroy it.
//
// String, GoString and MarshalJSON are overridden so the key cannot end up in
// logs or serialized state by accident.
type DerivedKey struct {
	mu  sync.RWMutex
	raw []byte
}

func newDerivedKey(raw []byte) *DerivedKey {
	return &DerivedKey{raw: raw}
}

// Destroy zeroes the key material. Any later Seal/Open with this key fails
// with ErrInvalidKey. Safe to call more than once and on a nil key.
func (k *DerivedKey) Destroy() {
	if k == nil {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	Zeroize(k.raw)
	k.raw = nil
}

// Destroyed reports whether the key has been wiped.
func (k *DerivedKey) Destroyed() bool {
	if k == nil {
		return true
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.raw == nil
}

// withBytes runs fn with the raw key while holding a read lock so that a
// concurrent Destroy cannot wipe the slice mid-operation.
func (k *DerivedKey) withBytes(fn func(raw []byte) error) error {
	if k == nil {
		return ErrInvalidKey
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if len(k.raw) != KeySize {
		return ErrInvalidKey
	}
	return fn(k.raw)
}

// String implements [fmt.Stringer].
func (k *DerivedKey) String() string {
	return redacted
}

// GoString implements [fmt.GoStringer].
func (k *DerivedKey) GoString() string {
	return redacted
}

// MarshalJSON always fails with ErrKeyNotSerializable.
func (k *DerivedKey) MarshalJSON() ([]byte, error) {
	return nil, ErrKeyNotSerializable
}

// Zeroize overwrites sensitive byte slices in place to reduce lifetime in memory.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
