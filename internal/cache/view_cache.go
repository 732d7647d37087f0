package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/scr1b3s/taskmaster/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyTasks  = "view:tasks"
	keyReport = "view:report"
)

// ViewCache caches the task list and the aggregated report in Redis. Both are
// pure read-side views, so any write simply drops them.
type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewViewCache returns a new ViewCache.
func NewViewCache(rdb *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{rdb: rdb, ttl: ttl}
}

// GetTasks returns the cached task list or nil if miss.
func (c *ViewCache) GetTasks(ctx context.Context) ([]dom.TaskWithDomain, error) {
	b, err := c.rdb.Get(ctx, keyTasks).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.TaskWithDomain
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetTasks stores the task list in cache.
func (c *ViewCache) SetTasks(ctx context.Context, list []dom.TaskWithDomain) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyTasks, b, c.ttl).Err()
}

// GetReport returns the cached report or nil if miss.
func (c *ViewCache) GetReport(ctx context.Context) (*dom.Report, error) {
	b, err := c.rdb.Get(ctx, keyReport).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rep dom.Report
	if err := json.Unmarshal(b, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// SetReport stores the report in cache.
func (c *ViewCache) SetReport(ctx context.Context, rep dom.Report) error {
	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyReport, b, c.ttl).Err()
}

// Invalidate removes both views (cache invalidation on write).
func (c *ViewCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyTasks, keyReport).Err()
}
