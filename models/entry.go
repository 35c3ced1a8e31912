// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the data types shared by the vault packages.
package models

// Entry is a single vault record. Entries live only inside the decrypted
// in-memory collection of an unlocked session; on disk they exist solely as
// part of the sealed envelope.
//
// Field order is significant: the codec serializes id, title and content in
// exactly this order.
type Entry struct {
	// ID is an opaque identifier generated at creation and never reused.
	ID string `json:"id"`

	// Title is the user-facing label of the entry.
	Title string `json:"title"`

	// Content is the secret body of the entry.
	Content string `json:"content"`
}
