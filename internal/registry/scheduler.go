package registry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const lockKey = "registry-sync"

// Scheduler runs the syncer at start and then on every tick. It owns its running
// flag so runs never overlap within a process, and takes a distributed lock when
// one is configured so only one replica syncs per interval.
type Scheduler struct {
	logs     *zap.SugaredLogger
	runner   Runner
	locker   Locker
	interval time.Duration

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewScheduler builds a scheduler. locker may be nil for single instance deployments.
func NewScheduler(logger *zap.SugaredLogger, runner Runner, locker Locker, interval time.Duration) *Scheduler {
	return &Scheduler{
		logs:     logger,
		runner:   runner,
		locker:   locker,
		interval: interval,
	}
}

// Run blocks until ctx is done and the last run has returned.
func (s *Scheduler) Run(ctx context.Context) {
	s.logs.Infow("registry sync scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.trigger(ctx)
	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.logs.Infow("registry sync scheduler stopped")
			return
		case <-ticker.C:
			s.trigger(ctx)
		}
	}
}

// Running reports whether a sync is in progress.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) trigger(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logs.Warnw("previous registry sync still running, skipping tick")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)
		s.runLocked(ctx)
	}()
}

func (s *Scheduler) runLocked(ctx context.Context) {
	if s.locker != nil {
		acquired, err := s.locker.AcquireLock(ctx, lockKey, s.interval)
		if err != nil {
			s.logs.Errorw("failed to acquire registry sync lock", "error", err)
			return
		}
		if !acquired {
			s.logs.Infow("registry sync lock held by another instance, skipping")
			return
		}
		defer func() {
			if err := s.locker.ReleaseLock(context.WithoutCancel(ctx), lockKey); err != nil {
				s.logs.Warnw("failed to release registry sync lock", "error", err)
			}
		}()
	}

	started := time.Now()
	report, err := s.runner.RunOnce(ctx)
	if err != nil {
		s.logs.Errorw("registry sync failed", "error", err, "updated", report.Updated)
		return
	}
	s.logs.Infow("registry sync finished", "tokens", report.Tokens, "duration", time.Since(started).String())
}
