package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"guestwall/internal/domain"
)

type contentRepository struct {
	DB *sql.DB
}

// NewContentRepository returns a ContentRepository backed by postgres.
func NewContentRepository(db *sql.DB) domain.ContentRepository {
	return &contentRepository{DB: db}
}

const contentColumns = `id, kind, author_name, body, COALESCE(media_url, ''), status,
		COALESCE(moderated_by, ''), moderated_at, COALESCE(rejection_reason, ''),
		COALESCE(session_id::text, ''), is_deleted, created_at`

func scanContentItem(row interface{ Scan(...any) error }) (*domain.ContentItem, error) {
	item := &domain.ContentItem{}
	var kind, status string
	err := row.Scan(
		&item.ID, &kind, &item.AuthorName, &item.Body, &item.MediaURL, &status,
		&item.ModeratedBy, &item.ModeratedAt, &item.RejectionReason,
		&item.SessionID, &item.IsDeleted, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Kind = domain.ContentKind(kind)
	item.Status = domain.ContentStatus(status)
	return item, nil
}

func (r *contentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	query := `
		INSERT INTO content_items (kind, author_name, body, media_url, status, session_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, '')::uuid, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		string(item.Kind), item.AuthorName, item.Body, item.MediaURL,
		string(item.Status), item.SessionID, item.CreatedAt,
	).Scan(&item.ID)
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = $1`
	item, err := scanContentItem(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *contentRepository) ListByStatus(ctx context.Context, status domain.ContentStatus, p domain.PaginationParams) ([]*domain.ContentItem, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM content_items WHERE status = $1 AND NOT is_deleted`,
		string(status),
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + contentColumns + `
		FROM content_items
		WHERE status = $1 AND NOT is_deleted
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, string(status), p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// UpdateStatus is a single conditional update keyed by id; concurrent
// transitions on the same item resolve last-writer-wins at the store.
func (r *contentRepository) UpdateStatus(ctx context.Context, id string, status domain.ContentStatus, moderatedBy, reason string, moderatedAt time.Time) (*domain.ContentItem, error) {
	query := `
		UPDATE content_items
		SET status = $2, moderated_by = $3, moderated_at = $4, rejection_reason = NULLIF($5, '')
		WHERE id = $1
		RETURNING ` + contentColumns + `
	`
	item, err := scanContentItem(r.DB.QueryRowContext(ctx, query, id, string(status), moderatedBy, moderatedAt, reason))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *contentRepository) UpdateStatusBatch(ctx context.Context, ids []string, status domain.ContentStatus, moderatedBy, reason string, moderatedAt time.Time) ([]string, error) {
	query := `
		UPDATE content_items
		SET status = $2, moderated_by = $3, moderated_at = $4, rejection_reason = NULLIF($5, '')
		WHERE id = ANY($1)
		RETURNING id
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), string(status), moderatedBy, moderatedAt, reason)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var updated []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		updated = append(updated, id)
	}
	return updated, rows.Err()
}

func (r *contentRepository) Stats(ctx context.Context) (*domain.ContentStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM content_items
		WHERE NOT is_deleted
	`
	stats := &domain.ContentStats{}
	if err := r.DB.QueryRowContext(ctx, query).Scan(&stats.Pending, &stats.Approved, &stats.Rejected); err != nil {
		return nil, err
	}
	return stats, nil
}
