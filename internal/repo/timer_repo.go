package repo

import (
	"context"
	"errors"
	"time"

	dom "github.com/scr1b3s/taskmaster/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimeEntryRepo persists focus sessions. The schema carries a partial unique
// index on (task_id) WHERE end_time IS NULL, so a task can never hold two open
// entries even under concurrent starts.
type TimeEntryRepo interface {
	// StartOpen opens a new entry unless one is already open for the task.
	// Returns false when the open entry already existed.
	StartOpen(ctx context.Context, taskID string, start time.Time) (bool, error)
	// CloseOpen closes the task's open entry, deriving duration_seconds from
	// the stored timestamps. Returns false when there was nothing to close.
	CloseOpen(ctx context.Context, taskID string, end time.Time) (dom.TimeEntry, bool, error)
}

// InterruptionRepo persists interruption log rows. Rows are append-only.
type InterruptionRepo interface {
	Insert(ctx context.Context, taskID string, occurredAt time.Time, reason string, notes *string) (dom.Interruption, error)
}

type PGTimeEntryRepo struct {
	db *pgxpool.Pool
}

func NewPGTimeEntryRepo(db *pgxpool.Pool) *PGTimeEntryRepo {
	return &PGTimeEntryRepo{db: db}
}

func (r *PGTimeEntryRepo) StartOpen(ctx context.Context, taskID string, start time.Time) (bool, error) {
	query := `
		INSERT INTO time_entries (task_id, start_time)
		VALUES ($1, $2)
		ON CONFLICT (task_id) WHERE end_time IS NULL DO NOTHING`
	tag, err := r.db.Exec(ctx, query, taskID, start)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGTimeEntryRepo) CloseOpen(ctx context.Context, taskID string, end time.Time) (dom.TimeEntry, bool, error) {
	query := `
		UPDATE time_entries
		SET end_time = $2,
		    duration_seconds = FLOOR(EXTRACT(EPOCH FROM ($2::timestamptz - start_time)))::bigint
		WHERE task_id = $1 AND end_time IS NULL
		RETURNING id, task_id, start_time, end_time, duration_seconds, completed_cycle`
	var e dom.TimeEntry
	err := r.db.QueryRow(ctx, query, taskID, end).Scan(
		&e.ID, &e.TaskID, &e.StartTime, &e.EndTime, &e.DurationSeconds, &e.CompletedCycle,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.TimeEntry{}, false, nil
	}
	if err != nil {
		return dom.TimeEntry{}, false, err
	}
	return e, true, nil
}

type PGInterruptionRepo struct {
	db *pgxpool.Pool
}

func NewPGInterruptionRepo(db *pgxpool.Pool) *PGInterruptionRepo {
	return &PGInterruptionRepo{db: db}
}

func (r *PGInterruptionRepo) Insert(ctx context.Context, taskID string, occurredAt time.Time, reason string, notes *string) (dom.Interruption, error) {
	query := `
		INSERT INTO interruptions (task_id, occurred_at, reason, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, task_id, occurred_at, reason, notes`
	var i dom.Interruption
	err := r.db.QueryRow(ctx, query, taskID, occurredAt, reason, notes).Scan(
		&i.ID, &i.TaskID, &i.OccurredAt, &i.Reason, &i.Notes,
	)
	return i, err
}
