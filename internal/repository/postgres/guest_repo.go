package postgres

import (
	"context"
	"database/sql"
	"strings"

	"guestwall/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

// NewGuestRepository returns a read-only GuestRepository backed by postgres.
// Guest rows are created by the external import process.
func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func (r *guestRepository) GetByInvitationCode(ctx context.Context, code string) (*domain.Guest, error) {
	query := `
		SELECT id, name, COALESCE(invitation_code, ''), attending, plus_one, created_at
		FROM guests
		WHERE LOWER(invitation_code) = LOWER($1)
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, strings.TrimSpace(code)).
		Scan(&g.ID, &g.Name, &g.InvitationCode, &g.Attending, &g.PlusOne, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `
		SELECT id, name, COALESCE(invitation_code, ''), attending, plus_one, created_at
		FROM guests
		WHERE id = $1
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&g.ID, &g.Name, &g.InvitationCode, &g.Attending, &g.PlusOne, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) List(ctx context.Context) ([]*domain.Guest, error) {
	query := `
		SELECT id, name, COALESCE(invitation_code, ''), attending, plus_one, created_at
		FROM guests
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var guests []*domain.Guest
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.Name, &g.InvitationCode, &g.Attending, &g.PlusOne, &g.CreatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
