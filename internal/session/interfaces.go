package session

import (
	"context"
	"time"
)

// IDGenerator produces unique entry ids.
type IDGenerator interface {
	Generate() string
}

// AutoLockJob locks an idle session in the background. It is idle until
// Start is called.
type AutoLockJob interface {
	Start(ctx context.Context, idleTimeout time.Duration)
	Stop()
}

// idleLocker is the part of VaultSession the auto-lock job needs.
type idleLocker interface {
	State() State
	IdleFor() time.Duration
	Lock()
}
