package service

import (
	"context"
	"fmt"

	dom "github.com/scr1b3s/taskmaster/internal/domain"
	"github.com/scr1b3s/taskmaster/internal/repo"

	"github.com/scr1b3s/taskmaster/internal/cache"
)

// ProviderTaskList is one task list on the external provider.
type ProviderTaskList struct {
	ID    string
	Title string
}

// ProviderTask is one task record as the provider exposes it.
type ProviderTask struct {
	ID     string
	Title  string
	Status string
	Parent string // empty = top-level
}

// TaskProvider is the read-only port to the external task service. Both calls
// are first-page only with an explicit cap; implementations may block on
// network latency and, on first use, on interactive authorization.
type TaskProvider interface {
	TaskLists(ctx context.Context, max int) ([]ProviderTaskList, error)
	Tasks(ctx context.Context, listID string, max int) ([]ProviderTask, error)
}

// SyncService mirrors the provider's tasks into the local store: one-way ETL,
// upsert by stable external id, single commit for the whole batch.
type SyncService struct {
	provider TaskProvider
	tasks    repo.TaskRepo
	cache    *cache.ViewCache

	maxLists int
	maxTasks int
}

// NewSyncService creates a SyncService. If c is nil, caching is disabled.
func NewSyncService(p TaskProvider, r repo.TaskRepo, c *cache.ViewCache, maxLists, maxTasks int) *SyncService {
	return &SyncService{provider: p, tasks: r, cache: c, maxLists: maxLists, maxTasks: maxTasks}
}

// Sync pulls every task list and upserts the records. Returns the number of
// records processed. A failure anywhere aborts the whole batch: nothing is
// committed partially. Running twice against unchanged upstream data changes
// nothing on the second run.
func (s *SyncService) Sync(ctx context.Context) (int, error) {
	lists, err := s.provider.TaskLists(ctx, s.maxLists)
	if err != nil {
		return 0, fmt.Errorf("list task lists: %w", err)
	}

	var batch []dom.Task
	for _, list := range lists {
		records, err := s.provider.Tasks(ctx, list.ID, s.maxTasks)
		if err != nil {
			return 0, fmt.Errorf("list tasks of %q: %w", list.Title, err)
		}
		for _, rec := range records {
			t := dom.Task{
				GoogleTaskID: rec.ID,
				Title:        rec.Title,
				Status:       rec.Status,
			}
			if rec.Parent != "" {
				parent := rec.Parent
				t.ParentID = &parent
			}
			batch = append(batch, t)
		}
	}

	count, err := s.tasks.UpsertAll(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("upsert tasks: %w", err)
	}
	s.invalidateCache(ctx)
	return count, nil
}

func (s *SyncService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
