// Package gtasks implements the task provider port against the Google Tasks
// API, with a file-cached OAuth token.
package gtasks

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/scr1b3s/taskmaster/internal/config"
	"github.com/scr1b3s/taskmaster/internal/service"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client talks to Google Tasks. Implements service.TaskProvider.
type Client struct {
	cfg config.GoogleConfig

	mu  sync.Mutex
	svc *tasks.Service
}

// NewClient returns a Client. No network or auth happens until the first call.
func NewClient(cfg config.GoogleConfig) *Client {
	return &Client{cfg: cfg}
}

// service authenticates lazily: cached token if present, refreshed through the
// token source, interactive flow as the last resort. A refreshed or new token
// is written back to the cache file.
func (c *Client) service(ctx context.Context) (*tasks.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		return c.svc, nil
	}

	b, err := os.ReadFile(c.cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read client secret file: %v", service.ErrAuth, err)
	}
	conf, err := google.ConfigFromJSON(b, tasks.TasksScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse client secret file: %v", service.ErrAuth, err)
	}

	tok, err := tokenFromFile(c.cfg.TokenFile)
	if err == nil {
		fresh, err := conf.TokenSource(ctx, tok).Token()
		if err != nil {
			// Expired and unrefreshable: fall through to the interactive flow.
			tok = nil
		} else {
			if fresh.AccessToken != tok.AccessToken || fresh.RefreshToken != tok.RefreshToken {
				if err := saveToken(c.cfg.TokenFile, fresh); err != nil {
					return nil, fmt.Errorf("%w: save refreshed token: %v", service.ErrAuth, err)
				}
			}
			tok = fresh
		}
	} else {
		tok = nil
	}
	if tok == nil {
		tok, err = tokenFromWeb(ctx, conf, c.cfg.AuthPort, c.cfg.AuthTimeout.Duration())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", service.ErrAuth, err)
		}
		if err := saveToken(c.cfg.TokenFile, tok); err != nil {
			return nil, fmt.Errorf("%w: save token: %v", service.ErrAuth, err)
		}
	}

	svc, err := tasks.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("%w: build tasks client: %v", service.ErrProvider, err)
	}
	c.svc = svc
	return svc, nil
}

// TaskLists returns up to max task lists (first page only).
func (c *Client) TaskLists(ctx context.Context, max int) ([]service.ProviderTaskList, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}
	res, err := svc.Tasklists.List().MaxResults(int64(max)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: tasklists.list: %v", service.ErrProvider, err)
	}
	out := make([]service.ProviderTaskList, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, service.ProviderTaskList{ID: item.Id, Title: item.Title})
	}
	return out, nil
}

// Tasks returns up to max tasks of one list, hidden ones included.
func (c *Client) Tasks(ctx context.Context, listID string, max int) ([]service.ProviderTask, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}
	res, err := svc.Tasks.List(listID).ShowHidden(true).MaxResults(int64(max)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: tasks.list: %v", service.ErrProvider, err)
	}
	out := make([]service.ProviderTask, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, service.ProviderTask{
			ID:     item.Id,
			Title:  item.Title,
			Status: item.Status,
			Parent: item.Parent,
		})
	}
	return out, nil
}
