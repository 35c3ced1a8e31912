package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	vault     Vault
	buildInfo models.AppBuildInfo
	clipboard ClipboardWriter
	logger    *logger.Logger
}

func New(vault Vault, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if vault == nil {
		return nil, errors.New("vault is nil")
	}
	return &TUI{
		vault:     vault,
		buildInfo: buildInfo,
		clipboard: clipboard.WriteAll,
		logger:    log,
	}, nil
}

// newRootModel assembles the pages, starting on the unlock screen.
func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(ctx, t.vault),
		pageList:   NewListModel(ctx, t.vault, t.clipboard),
		pageAdd:    NewAddModel(ctx, t.vault),
	}
	return NewRootModel(t.vault, pages, pageUnlock, t.buildInfo)
}

// Run blocks until the user quits. ctrl+c is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}

	t.logger.Debug().Str("func", "*TUI.Run").Msg("tui finished")
	return nil
}
