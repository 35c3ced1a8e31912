// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts the in-memory entry collection to and from the
// plaintext payload that is sealed into the vault envelope.
//
// The payload is a JSON array of objects whose keys appear in the order
// id, title, content. Decoding is strict: anything that is not exactly that
// structure is rejected with [ErrMalformedPayload].
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-vault/models"
)

// ErrMalformedPayload is returned by Decode when a successfully authenticated
// plaintext does not parse as an entry collection.
var ErrMalformedPayload = errors.New("malformed vault payload")

// Encode serializes entries in order. A nil or empty collection encodes as
// an empty JSON array.
func Encode(entries []models.Entry) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode entries: %w", err)
	}
	return payload, nil
}

// Decode parses a payload produced by Encode. The returned slice is never nil
// on success.
func Decode(payload []byte) ([]models.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()

	// Decoding into a pointer to slice lets us tell "null" apart from "[]".
	var entries *[]models.Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: payload is null", ErrMalformedPayload)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after collection", ErrMalformedPayload)
	}

	out := *entries
	if out == nil {
		out = []models.Entry{}
	}

	seen := make(map[string]struct{}, len(out))
	for i, e := range out {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrMalformedPayload, i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformedPayload, e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	return out, nil
}
