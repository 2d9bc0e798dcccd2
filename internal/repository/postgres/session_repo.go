package postgres

import (
	"context"
	"database/sql"
	"time"

	"guestwall/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository returns a SessionRepository backed by postgres.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.GuestSession) error {
	query := `
		INSERT INTO guest_sessions (token, guest_id, guest_name, auth_method, created_at, expires_at, last_activity_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.Token, s.GuestID, s.GuestName, string(s.AuthMethod), s.CreatedAt, s.ExpiresAt, s.LastActivityAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*domain.GuestSession, error) {
	query := `
		SELECT id, token, COALESCE(guest_id::text, ''), guest_name, auth_method, created_at, expires_at, last_activity_at
		FROM guest_sessions
		WHERE token = $1
	`
	s := &domain.GuestSession{}
	var method string
	err := r.DB.QueryRowContext(ctx, query, token).
		Scan(&s.ID, &s.Token, &s.GuestID, &s.GuestName, &method, &s.CreatedAt, &s.ExpiresAt, &s.LastActivityAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.AuthMethod = domain.AuthMethod(method)
	return s, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM guest_sessions WHERE token = $1`
	_, err := r.DB.ExecContext(ctx, query, token)
	return err
}

func (r *sessionRepository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	query := `UPDATE guest_sessions SET last_activity_at = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, sessionID, at)
	return err
}
