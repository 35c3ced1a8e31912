package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/tui"
)

type App struct {
	session  Locker
	autoLock BackgroundJob
	ui       UI
	cfg      config.App
	logger   *logger.Logger
}

func NewApp(session Locker, autoLock BackgroundJob, ui UI, cfg config.App, log *logger.Logger) (*App, error) {
	if session == nil {
		return nil, errors.New("session is nil")
	}
	if autoLock == nil {
		return nil, errors.New("auto-lock job is nil")
	}
	if ui == nil {
		return nil, errors.New("ui is nil")
	}

	return &App{
		session:  session,
		autoLock: autoLock,
		ui:       ui,
		cfg:      cfg,
		logger:   log,
	}, nil
}

// Run starts the auto-lock job and blocks in the UI. Quitting with ctrl+c is
// a normal exit.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.With().Str("func", "*App.Run").Logger()

	a.autoLock.Start(ctx, a.cfg.AutoLockAfter)
	defer a.autoLock.Stop()
	defer a.session.Lock()

	log.Info().Dur("auto_lock_after", a.cfg.AutoLockAfter).Msg("vault client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		log.Info().Msg("vault client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info().Msg("vault client interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
