package service

import (
	"context"
	"strings"
	"time"

	"github.com/scr1b3s/taskmaster/internal/repo"
	"github.com/scr1b3s/taskmaster/internal/utils"

	"github.com/scr1b3s/taskmaster/internal/cache"
)

// TimerService drives the per-task focus timer and the interruption log.
//
// States per task: IDLE (no open entry) -> RUNNING (one open entry) -> IDLE.
// Start and Stop are both idempotent; the open-entry invariant itself is held
// by the store's partial unique index, not by a read-then-write here.
type TimerService struct {
	entries       repo.TimeEntryRepo
	interruptions repo.InterruptionRepo
	cache         *cache.ViewCache

	now func() time.Time
}

// NewTimerService creates a TimerService. If c is nil, caching is disabled.
func NewTimerService(entries repo.TimeEntryRepo, interruptions repo.InterruptionRepo, c *cache.ViewCache) *TimerService {
	return &TimerService{
		entries:       entries,
		interruptions: interruptions,
		cache:         c,
		now:           time.Now,
	}
}

// Start opens a focus session for the task. A second Start with no Stop in
// between is a no-op (guards double-clicks).
func (s *TimerService) Start(ctx context.Context, taskID string) error {
	_, err := s.entries.StartOpen(ctx, taskID, s.now().UTC())
	if err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Stop closes the task's open session and fixes its duration in whole seconds.
// With no open session it is a no-op.
func (s *TimerService) Stop(ctx context.Context, taskID string) error {
	_, _, err := s.entries.CloseOpen(ctx, taskID, s.now().UTC())
	if err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// LogInterruption records why a focus session stopped. Logging is not coupled
// to timer state: the stop-log-start order is a UI convention, nothing here
// rejects a log while a timer runs.
func (s *TimerService) LogInterruption(ctx context.Context, taskID, reason string, notes *string) error {
	reason = strings.TrimSpace(reason)
	_, err := s.interruptions.Insert(ctx, taskID, s.now().UTC(), reason, notes)
	if err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TimerService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
