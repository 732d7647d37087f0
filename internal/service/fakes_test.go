package service

import (
	"context"
	"sort"
	"time"

	dom "github.com/scr1b3s/taskmaster/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory fakes standing in for the Postgres repos. They mirror the store's
// contracts closely enough to exercise the services without a database:
// upserts preserve triage state, the one-open-entry rule holds, and unknown
// task ids surface as FK violations.

func fkViolation() error {
	return &pgconn.PgError{Code: "23503", Message: "foreign key violation"}
}

type fakeTaskRepo struct {
	tasks map[string]*dom.Task
	now   time.Time
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*dom.Task{}, now: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)}
}

func (r *fakeTaskRepo) UpsertAll(ctx context.Context, batch []dom.Task) (int, error) {
	count := 0
	for _, in := range batch {
		if existing, ok := r.tasks[in.GoogleTaskID]; ok {
			existing.Title = in.Title
			existing.Status = in.Status
			existing.ParentID = in.ParentID
		} else {
			t := in
			t.DomainID = nil
			t.IsTriaged = false
			t.CreatedAt = r.now
			r.now = r.now.Add(time.Second)
			r.tasks[t.GoogleTaskID] = &t
		}
		count++
	}
	return count, nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (dom.TaskWithDomain, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.TaskWithDomain{}, pgx.ErrNoRows
	}
	return dom.TaskWithDomain{Task: *t}, nil
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]dom.TaskWithDomain, error) {
	var list []dom.TaskWithDomain
	for _, t := range r.tasks {
		list = append(list, dom.TaskWithDomain{Task: *t})
	}
	// Untriaged first, then newest first, as the SQL orders it.
	sort.Slice(list, func(i, j int) bool {
		if list[i].IsTriaged != list[j].IsTriaged {
			return !list[i].IsTriaged
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *fakeTaskRepo) SetTriage(ctx context.Context, id string, domainID int64) (dom.TaskWithDomain, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.TaskWithDomain{}, pgx.ErrNoRows
	}
	t.DomainID = &domainID
	t.IsTriaged = true
	return dom.TaskWithDomain{Task: *t}, nil
}

type fakeDomainRepo struct {
	domains []dom.FocusDomain
	nextID  int64
}

func newFakeDomainRepo() *fakeDomainRepo {
	return &fakeDomainRepo{nextID: 1}
}

func (r *fakeDomainRepo) GetByName(ctx context.Context, name string) (dom.FocusDomain, error) {
	for _, d := range r.domains {
		if d.Name == name {
			return d, nil
		}
	}
	return dom.FocusDomain{}, pgx.ErrNoRows
}

func (r *fakeDomainRepo) Create(ctx context.Context, name, colorHex string) (dom.FocusDomain, error) {
	d := dom.FocusDomain{ID: r.nextID, Name: name, ColorHex: colorHex}
	r.nextID++
	r.domains = append(r.domains, d)
	return d, nil
}

type fakeTimeEntryRepo struct {
	tasks   *fakeTaskRepo
	entries []dom.TimeEntry
	nextID  int64
}

func newFakeTimeEntryRepo(tasks *fakeTaskRepo) *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{tasks: tasks, nextID: 1}
}

func (r *fakeTimeEntryRepo) StartOpen(ctx context.Context, taskID string, start time.Time) (bool, error) {
	if _, ok := r.tasks.tasks[taskID]; !ok {
		return false, fkViolation()
	}
	if r.openEntry(taskID) != nil {
		return false, nil
	}
	r.entries = append(r.entries, dom.TimeEntry{ID: r.nextID, TaskID: taskID, StartTime: start})
	r.nextID++
	return true, nil
}

func (r *fakeTimeEntryRepo) CloseOpen(ctx context.Context, taskID string, end time.Time) (dom.TimeEntry, bool, error) {
	e := r.openEntry(taskID)
	if e == nil {
		return dom.TimeEntry{}, false, nil
	}
	e.EndTime = &end
	e.DurationSeconds = dom.DurationSeconds(e.StartTime, end)
	return *e, true, nil
}

func (r *fakeTimeEntryRepo) openEntry(taskID string) *dom.TimeEntry {
	for i := range r.entries {
		if r.entries[i].TaskID == taskID && r.entries[i].EndTime == nil {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *fakeTimeEntryRepo) openCount(taskID string) int {
	n := 0
	for _, e := range r.entries {
		if e.TaskID == taskID && e.EndTime == nil {
			n++
		}
	}
	return n
}

type fakeInterruptionRepo struct {
	tasks  *fakeTaskRepo
	rows   []dom.Interruption
	nextID int64
}

func newFakeInterruptionRepo(tasks *fakeTaskRepo) *fakeInterruptionRepo {
	return &fakeInterruptionRepo{tasks: tasks, nextID: 1}
}

func (r *fakeInterruptionRepo) Insert(ctx context.Context, taskID string, occurredAt time.Time, reason string, notes *string) (dom.Interruption, error) {
	if _, ok := r.tasks.tasks[taskID]; !ok {
		return dom.Interruption{}, fkViolation()
	}
	row := dom.Interruption{ID: r.nextID, TaskID: taskID, OccurredAt: occurredAt, Reason: reason, Notes: notes}
	r.nextID++
	r.rows = append(r.rows, row)
	return row, nil
}

// fakeReportRepo derives the joined report rows from the other fakes, the way
// the SQL joins would.
type fakeReportRepo struct {
	tasks         *fakeTaskRepo
	domains       *fakeDomainRepo
	entries       *fakeTimeEntryRepo
	interruptions *fakeInterruptionRepo
}

func (r *fakeReportRepo) ClosedEntries(ctx context.Context) ([]dom.ClosedEntryRow, error) {
	var rows []dom.ClosedEntryRow
	for _, e := range r.entries.entries {
		if e.EndTime == nil {
			continue
		}
		t := r.tasks.tasks[e.TaskID]
		row := dom.ClosedEntryRow{
			StartTime:       e.StartTime,
			DurationSeconds: e.DurationSeconds,
			TaskID:          t.GoogleTaskID,
			TaskTitle:       t.Title,
		}
		if t.DomainID != nil {
			for _, d := range r.domains.domains {
				if d.ID == *t.DomainID {
					name, color := d.Name, d.ColorHex
					row.DomainName = &name
					row.DomainColor = &color
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *fakeReportRepo) Interruptions(ctx context.Context) ([]dom.InterruptionRow, error) {
	var rows []dom.InterruptionRow
	for _, i := range r.interruptions.rows {
		t := r.tasks.tasks[i.TaskID]
		rows = append(rows, dom.InterruptionRow{OccurredAt: i.OccurredAt, Reason: i.Reason, TaskTitle: t.Title})
	}
	return rows, nil
}
