package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/scr1b3s/taskmaster/internal/domain"
	"github.com/scr1b3s/taskmaster/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/scr1b3s/taskmaster/internal/cache"
)

// Fixed triage palette. A recognized "Work" label gets its own color,
// everything else gets the default. Deliberately simple.
const (
	workDomainName   = "Work"
	workDomainColor  = "#3b82f6"
	otherDomainColor = "#10b981"
)

// TaskService serves the task list and the triage operation.
type TaskService struct {
	tasks   repo.TaskRepo
	domains repo.DomainRepo
	cache   *cache.ViewCache
	sf      singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(tasks repo.TaskRepo, domains repo.DomainRepo, c *cache.ViewCache) *TaskService {
	return &TaskService{tasks: tasks, domains: domains, cache: c}
}

// List returns all mirrored tasks, untriaged first, then newest first.
func (s *TaskService) List(ctx context.Context) ([]dom.TaskWithDomain, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("tasks", func() (interface{}, error) {
			if list, err := s.cache.GetTasks(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.tasks.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetTasks(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.TaskWithDomain), nil
	}
	return s.tasks.List(ctx)
}

// GetByID returns one task with its domain, for the focus panel.
func (s *TaskService) GetByID(ctx context.Context, id string) (dom.TaskWithDomain, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.TaskWithDomain{}, ErrNotFound
		}
		return dom.TaskWithDomain{}, err
	}
	return t, nil
}

// Triage assigns the task to the named domain, creating the domain on first
// use. Marks the task triaged and returns it with the domain attached.
func (s *TaskService) Triage(ctx context.Context, taskID, domainName string) (dom.TaskWithDomain, error) {
	domainName = strings.TrimSpace(domainName)

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.TaskWithDomain{}, ErrNotFound
		}
		return dom.TaskWithDomain{}, err
	}

	d, err := s.domains.GetByName(ctx, domainName)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return dom.TaskWithDomain{}, err
		}
		d, err = s.domains.Create(ctx, domainName, colorForDomain(domainName))
		if err != nil {
			return dom.TaskWithDomain{}, err
		}
	}

	t, err := s.tasks.SetTriage(ctx, taskID, d.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.TaskWithDomain{}, ErrNotFound
		}
		return dom.TaskWithDomain{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TaskService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func colorForDomain(name string) string {
	if name == workDomainName {
		return workDomainColor
	}
	return otherDomainColor
}
