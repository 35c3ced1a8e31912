package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/logger"
)

const (
	minAutoLockTick = 10 * time.Millisecond
	maxAutoLockTick = time.Second
)

type autoLockJob struct {
	session idleLocker
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockJob creates a job that locks s once it has been idle for the
// timeout passed to Start.
func NewAutoLockJob(s *VaultSession, log *logger.Logger) AutoLockJob {
	return newAutoLockJob(s, log)
}

func newAutoLockJob(s idleLocker, log *logger.Logger) *autoLockJob {
	return &autoLockJob{session: s, logger: log}
}

// Start stops any previously running job, then checks the session's idle time
// on a ticker. A non-positive idleTimeout disables auto-lock. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *autoLockJob) Start(ctx context.Context, idleTimeout time.Duration) {
	j.Stop()

	if idleTimeout <= 0 {
		j.logger.Debug().Str("func", "*autoLockJob.Start").Msg("auto-lock disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(tickFor(idleTimeout))
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.session.State() == StateUnlocked && j.session.IdleFor() >= idleTimeout {
					j.logger.Info().Str("func", "*autoLockJob.Start").Dur("idle_timeout", idleTimeout).Msg("locking idle vault")
					j.session.Lock()
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited. Safe
// to call when the job is not running.
func (j *autoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func tickFor(idleTimeout time.Duration) time.Duration {
	return min(max(idleTimeout/10, minAutoLockTick), maxAutoLockTick)
}
