package backup

import (
	"context"
	"time"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *Manager
	BackupInterval time.Duration

	run    func(ctx context.Context) (string, error)
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a new backup scheduler
func NewScheduler(manager *Manager, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour // Default: daily
	}
	return &Scheduler{
		Manager:        manager,
		BackupInterval: interval,
		run:            manager.CreateBackup,
		done:           make(chan struct{}),
	}
}

// Start runs one backup immediately and then one per interval until ctx is
// cancelled or Stop is called. The returned channel is closed when the loop
// exits.
func (s *Scheduler) Start(ctx context.Context) <-chan struct{} {
	ctx, s.cancel = context.WithCancel(ctx)
	logger := s.Manager.Logger

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.BackupInterval)
		defer ticker.Stop()

		if _, err := s.run(ctx); err != nil {
			logger.Error().Err(err).Msg("initial backup failed")
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.run(ctx); err != nil {
					logger.Error().Err(err).Msg("scheduled backup failed")
				}
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler and waits for the loop to exit
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
