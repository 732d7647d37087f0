package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	dom "github.com/scr1b3s/taskmaster/internal/domain"
)

type fakeProvider struct {
	lists       []ProviderTaskList
	tasksByList map[string][]ProviderTask

	listsErr error
	tasksErr error

	maxListsSeen int
	maxTasksSeen int
}

func (p *fakeProvider) TaskLists(ctx context.Context, max int) ([]ProviderTaskList, error) {
	p.maxListsSeen = max
	if p.listsErr != nil {
		return nil, p.listsErr
	}
	return p.lists, nil
}

func (p *fakeProvider) Tasks(ctx context.Context, listID string, max int) ([]ProviderTask, error) {
	p.maxTasksSeen = max
	if p.tasksErr != nil {
		return nil, p.tasksErr
	}
	return p.tasksByList[listID], nil
}

func newSyncFixture(p *fakeProvider) (*SyncService, *fakeTaskRepo) {
	tasks := newFakeTaskRepo()
	return NewSyncService(p, tasks, nil, 10, 100), tasks
}

func TestSyncInsertsNewTasks(t *testing.T) {
	p := &fakeProvider{
		lists: []ProviderTaskList{{ID: "l1", Title: "Inbox"}, {ID: "l2", Title: "Chores"}},
		tasksByList: map[string][]ProviderTask{
			"l1": {
				{ID: "g1", Title: "Write report", Status: "needsAction"},
				{ID: "g2", Title: "Review draft", Status: "needsAction", Parent: "g1"},
			},
			"l2": {
				{ID: "g3", Title: "Laundry", Status: "completed"},
			},
		},
	}
	svc, tasks := newSyncFixture(p)

	count, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if count != 3 {
		t.Errorf("synced count = %d, want 3", count)
	}
	if len(tasks.tasks) != 3 {
		t.Errorf("stored tasks = %d, want 3", len(tasks.tasks))
	}

	child := tasks.tasks["g2"]
	if child.ParentID == nil || *child.ParentID != "g1" {
		t.Errorf("parent of g2 = %v, want g1", child.ParentID)
	}
	if top := tasks.tasks["g1"]; top.ParentID != nil {
		t.Errorf("parent of g1 = %v, want nil", top.ParentID)
	}
	if tasks.tasks["g1"].IsTriaged || tasks.tasks["g1"].DomainID != nil {
		t.Error("fresh task must arrive untriaged with no domain")
	}
	if p.maxListsSeen != 10 || p.maxTasksSeen != 100 {
		t.Errorf("page caps = (%d, %d), want (10, 100)", p.maxListsSeen, p.maxTasksSeen)
	}
}

func TestSyncUpdatesPreserveTriage(t *testing.T) {
	p := &fakeProvider{
		lists: []ProviderTaskList{{ID: "l1", Title: "Inbox"}},
		tasksByList: map[string][]ProviderTask{
			"l1": {{ID: "g1", Title: "Write report", Status: "needsAction"}},
		},
	}
	svc, tasks := newSyncFixture(p)

	ctx := context.Background()
	if _, err := svc.Sync(ctx); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	// Triage locally, then change the task upstream.
	domainID := int64(7)
	tasks.tasks["g1"].DomainID = &domainID
	tasks.tasks["g1"].IsTriaged = true
	createdAt := tasks.tasks["g1"].CreatedAt

	p.tasksByList["l1"] = []ProviderTask{{ID: "g1", Title: "Write the report", Status: "completed"}}
	if _, err := svc.Sync(ctx); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	got := tasks.tasks["g1"]
	if got.Title != "Write the report" || got.Status != "completed" {
		t.Errorf("title/status not overwritten: %+v", got)
	}
	if !got.IsTriaged || got.DomainID == nil || *got.DomainID != domainID {
		t.Errorf("triage state not preserved: %+v", got)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Errorf("created_at changed: %v -> %v", createdAt, got.CreatedAt)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	p := &fakeProvider{
		lists: []ProviderTaskList{{ID: "l1", Title: "Inbox"}},
		tasksByList: map[string][]ProviderTask{
			"l1": {
				{ID: "g1", Title: "Write report", Status: "needsAction"},
				{ID: "g2", Title: "Laundry", Status: "completed"},
			},
		},
	}
	svc, tasks := newSyncFixture(p)

	ctx := context.Background()
	if _, err := svc.Sync(ctx); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	before := map[string]dom.Task{}
	for id, task := range tasks.tasks {
		before[id] = *task
	}

	count, err := svc.Sync(ctx)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if count != 2 {
		t.Errorf("second sync count = %d, want 2", count)
	}
	if len(tasks.tasks) != len(before) {
		t.Fatalf("row count changed: %d -> %d", len(before), len(tasks.tasks))
	}
	for id, task := range tasks.tasks {
		if *task != before[id] {
			t.Errorf("task %s changed on idempotent re-sync: %+v != %+v", id, *task, before[id])
		}
	}
}

func TestSyncSurfacesProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		p       *fakeProvider
		wantErr error
	}{
		{
			name:    "auth failure listing lists",
			p:       &fakeProvider{listsErr: fmt.Errorf("%w: token expired", ErrAuth)},
			wantErr: ErrAuth,
		},
		{
			name: "provider failure listing tasks",
			p: &fakeProvider{
				lists:    []ProviderTaskList{{ID: "l1", Title: "Inbox"}},
				tasksErr: fmt.Errorf("%w: 503", ErrProvider),
			},
			wantErr: ErrProvider,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tasks := newSyncFixture(tt.p)
			_, err := svc.Sync(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Sync() error = %v, want %v", err, tt.wantErr)
			}
			if len(tasks.tasks) != 0 {
				t.Errorf("failed sync committed %d tasks, want 0", len(tasks.tasks))
			}
		})
	}
}
