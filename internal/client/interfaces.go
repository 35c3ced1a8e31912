// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end. Run blocks until the user leaves.
type UI interface {
	Run(ctx context.Context) error
}

// Locker is the part of the vault session the runtime needs on shutdown.
type Locker interface {
	Lock()
}

// BackgroundJob is a restartable periodic job bound to the app lifetime.
type BackgroundJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
