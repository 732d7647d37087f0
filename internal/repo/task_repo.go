package repo

import (
	"context"

	dom "github.com/scr1b3s/taskmaster/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo interface {
	UpsertAll(ctx context.Context, tasks []dom.Task) (int, error)
	GetByID(ctx context.Context, id string) (dom.TaskWithDomain, error)
	List(ctx context.Context) ([]dom.TaskWithDomain, error)
	SetTriage(ctx context.Context, id string, domainID int64) (dom.TaskWithDomain, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `
	t.google_task_id, t.title, t.status, t.parent_id, t.domain_id, t.is_triaged, t.created_at,
	d.id, d.name, d.color_hex`

// UpsertAll writes the whole sync batch in one transaction: insert new tasks,
// overwrite title/status/parent on known ones. Triage state and created_at are
// never touched, so re-syncing keeps local classification intact. Returns the
// number of rows processed (inserted + updated, not distinguished).
func (r *PGTaskRepo) UpsertAll(ctx context.Context, tasks []dom.Task) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO tasks (google_task_id, title, status, parent_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (google_task_id) DO UPDATE
		SET title = EXCLUDED.title, status = EXCLUDED.status, parent_id = EXCLUDED.parent_id`
	count := 0
	for _, t := range tasks {
		if _, err := tx.Exec(ctx, query, t.GoogleTaskID, t.Title, t.Status, t.ParentID); err != nil {
			return 0, err
		}
		count++
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id string) (dom.TaskWithDomain, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t LEFT JOIN domains d ON t.domain_id = d.id
		WHERE t.google_task_id = $1`
	return scanTaskRow(r.db.QueryRow(ctx, query, id))
}

// List returns all mirrored tasks, untriaged first, then newest first.
func (r *PGTaskRepo) List(ctx context.Context) ([]dom.TaskWithDomain, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t LEFT JOIN domains d ON t.domain_id = d.id
		ORDER BY t.is_triaged ASC, t.created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.TaskWithDomain
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) SetTriage(ctx context.Context, id string, domainID int64) (dom.TaskWithDomain, error) {
	query := `
		WITH updated AS (
			UPDATE tasks SET domain_id = $2, is_triaged = TRUE
			WHERE google_task_id = $1
			RETURNING google_task_id, title, status, parent_id, domain_id, is_triaged, created_at
		)
		SELECT ` + taskColumns + `
		FROM updated t LEFT JOIN domains d ON t.domain_id = d.id`
	return scanTaskRow(r.db.QueryRow(ctx, query, id, domainID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row rowScanner) (dom.TaskWithDomain, error) {
	var t dom.TaskWithDomain
	var domID *int64
	var domName, domColor *string
	err := row.Scan(
		&t.GoogleTaskID, &t.Title, &t.Status, &t.ParentID, &t.DomainID, &t.IsTriaged, &t.CreatedAt,
		&domID, &domName, &domColor,
	)
	if err != nil {
		return dom.TaskWithDomain{}, err
	}
	if domID != nil {
		t.Domain = &dom.FocusDomain{ID: *domID, Name: *domName, ColorHex: *domColor}
	}
	return t, nil
}
