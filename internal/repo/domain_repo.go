package repo

import (
	"context"

	dom "github.com/scr1b3s/taskmaster/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DomainRepo provides focus-domain persistence. Domains are created lazily on
// first triage and never updated.
type DomainRepo interface {
	GetByName(ctx context.Context, name string) (dom.FocusDomain, error)
	Create(ctx context.Context, name, colorHex string) (dom.FocusDomain, error)
}

type PGDomainRepo struct {
	db *pgxpool.Pool
}

func NewPGDomainRepo(db *pgxpool.Pool) *PGDomainRepo {
	return &PGDomainRepo{db: db}
}

// GetByName returns the domain with the exact name.
func (r *PGDomainRepo) GetByName(ctx context.Context, name string) (dom.FocusDomain, error) {
	var d dom.FocusDomain
	err := r.db.QueryRow(ctx,
		`SELECT id, name, color_hex FROM domains WHERE name = $1`,
		name,
	).Scan(&d.ID, &d.Name, &d.ColorHex)
	return d, err
}

// Create inserts a new domain and returns it.
func (r *PGDomainRepo) Create(ctx context.Context, name, colorHex string) (dom.FocusDomain, error) {
	query := `
		INSERT INTO domains (name, color_hex)
		VALUES ($1, $2)
		RETURNING id, name, color_hex`
	var d dom.FocusDomain
	err := r.db.QueryRow(ctx, query, name, colorHex).Scan(&d.ID, &d.Name, &d.ColorHex)
	return d, err
}
