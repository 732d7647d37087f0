package repo

import (
	"context"

	dom "github.com/scr1b3s/taskmaster/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepo reads the raw rows the report aggregates. Read-only.
type ReportRepo interface {
	ClosedEntries(ctx context.Context) ([]dom.ClosedEntryRow, error)
	Interruptions(ctx context.Context) ([]dom.InterruptionRow, error)
}

type PGReportRepo struct {
	db *pgxpool.Pool
}

func NewPGReportRepo(db *pgxpool.Pool) *PGReportRepo {
	return &PGReportRepo{db: db}
}

// ClosedEntries returns every closed time entry joined with its task and
// (optionally) domain. Open entries are excluded: their duration is not
// authoritative yet.
func (r *PGReportRepo) ClosedEntries(ctx context.Context) ([]dom.ClosedEntryRow, error) {
	query := `
		SELECT te.start_time, te.duration_seconds, t.google_task_id, t.title, d.name, d.color_hex
		FROM time_entries te
		JOIN tasks t ON te.task_id = t.google_task_id
		LEFT JOIN domains d ON t.domain_id = d.id
		WHERE te.end_time IS NOT NULL`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.ClosedEntryRow
	for rows.Next() {
		var e dom.ClosedEntryRow
		if err := rows.Scan(&e.StartTime, &e.DurationSeconds, &e.TaskID, &e.TaskTitle,
			&e.DomainName, &e.DomainColor); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Interruptions returns every interruption joined with its task title.
func (r *PGReportRepo) Interruptions(ctx context.Context) ([]dom.InterruptionRow, error) {
	query := `
		SELECT i.occurred_at, i.reason, t.title
		FROM interruptions i
		JOIN tasks t ON i.task_id = t.google_task_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.InterruptionRow
	for rows.Next() {
		var i dom.InterruptionRow
		if err := rows.Scan(&i.OccurredAt, &i.Reason, &i.TaskTitle); err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, rows.Err()
}
