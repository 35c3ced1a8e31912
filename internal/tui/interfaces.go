package tui

import (
	"context"

	"github.com/MKhiriev/go-note-vault/internal/session"
	"github.com/MKhiriev/go-note-vault/models"
)

// Vault is the part of [session.VaultSession] the screens drive.
type Vault interface {
	Unlock(ctx context.Context, password string) error
	AddEntry(ctx context.Context, title, content string) (models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	Lock()
	State() session.State
	Entries() []models.Entry
	Touch()
}

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(text string) error
