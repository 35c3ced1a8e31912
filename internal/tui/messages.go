package tui

import (
	"github.com/MKhiriev/go-note-vault/models"
)

const (
	pageUnlock = "unlock"
	pageList   = "list"
	pageAdd    = "add"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, if set, is
// delivered to the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// UnlockResult is produced by the unlock command once key derivation and
// envelope opening have finished.
type UnlockResult struct {
	Err error
}

// EntryAddedResult is produced by the add command.
type EntryAddedResult struct {
	Entry models.Entry
	Err   error
}

// EntryDeletedResult is produced by the delete command.
type EntryDeletedResult struct {
	ID  string
	Err error
}

type copiedMsg struct {
	err error
}

// lockCheckMsg drives the root model's poll of the session state.
type lockCheckMsg struct{}

// vaultLockedMsg tells the unlock page why it is being shown again.
type vaultLockedMsg struct {
	reason string
}

type clearStatusMsg struct{}
