package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/tui"
)

type recorder struct {
	calls []string
}

type fakeLocker struct{ rec *recorder }

func (f fakeLocker) Lock() { f.rec.calls = append(f.rec.calls, "lock") }

type fakeJob struct {
	rec     *recorder
	started time.Duration
}

func (f *fakeJob) Start(_ context.Context, d time.Duration) {
	f.started = d
	f.rec.calls = append(f.rec.calls, "start")
}

func (f *fakeJob) Stop() { f.rec.calls = append(f.rec.calls, "stop") }

type fakeUI struct {
	rec *recorder
	err error
}

func (f fakeUI) Run(context.Context) error {
	f.rec.calls = append(f.rec.calls, "ui")
	return f.err
}

func TestNewApp_NilDependencies(t *testing.T) {
	rec := &recorder{}
	log := logger.Nop()

	_, err := NewApp(nil, &fakeJob{rec: rec}, fakeUI{rec: rec}, config.App{}, log)
	assert.Error(t, err)
	_, err = NewApp(fakeLocker{rec}, nil, fakeUI{rec: rec}, config.App{}, log)
	assert.Error(t, err)
	_, err = NewApp(fakeLocker{rec}, &fakeJob{rec: rec}, nil, config.App{}, log)
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "normal exit"},
		{name: "ctrl+c", uiErr: tui.ErrUserQuit},
		{name: "cancelled", uiErr: context.Canceled},
		{name: "ui failure", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			job := &fakeJob{rec: rec}
			app, err := NewApp(fakeLocker{rec}, job, fakeUI{rec: rec, err: tt.uiErr},
				config.App{AutoLockAfter: time.Minute}, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, time.Minute, job.started)
			assert.Equal(t, []string{"start", "ui", "lock", "stop"}, rec.calls)
		})
	}
}
