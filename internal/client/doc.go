// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault application runtime.
//
// It wires the terminal UI, the vault session and the idle auto-lock job
// into a single process lifecycle. Whatever way the UI exits, the session is
// locked and its key wiped before Run returns.
package client
