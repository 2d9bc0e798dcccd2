package postgres

import (
	"context"
	"database/sql"

	"guestwall/internal/domain"
)

type feedRepository struct {
	DB *sql.DB
}

// NewFeedRepository returns a FeedRepository backed by postgres.
func NewFeedRepository(db *sql.DB) domain.FeedRepository {
	return &feedRepository{DB: db}
}

func (r *feedRepository) CreateEntry(ctx context.Context, e *domain.FeedEntry) error {
	query := `
		INSERT INTO feed_entries (content_id, kind, author_name, preview, is_public, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.ContentID, string(e.Kind), e.AuthorName, e.Preview, e.IsPublic, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *feedRepository) SetPublic(ctx context.Context, contentID string, isPublic bool) error {
	query := `UPDATE feed_entries SET is_public = $2 WHERE content_id = $1`
	_, err := r.DB.ExecContext(ctx, query, contentID, isPublic)
	return err
}

func (r *feedRepository) ListPublic(ctx context.Context, p domain.PaginationParams) ([]*domain.FeedEntry, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM feed_entries WHERE is_public`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, content_id, kind, author_name, preview, is_public, created_at
		FROM feed_entries
		WHERE is_public
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var entries []*domain.FeedEntry
	for rows.Next() {
		e := &domain.FeedEntry{}
		var kind string
		if err := rows.Scan(&e.ID, &e.ContentID, &kind, &e.AuthorName, &e.Preview, &e.IsPublic, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		e.Kind = domain.ContentKind(kind)
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

type pinnedItemRepository struct {
	DB *sql.DB
}

// NewPinnedItemRepository returns a PinnedItemRepository backed by postgres.
func NewPinnedItemRepository(db *sql.DB) domain.PinnedItemRepository {
	return &pinnedItemRepository{DB: db}
}

func (r *pinnedItemRepository) Upsert(ctx context.Context, pin *domain.PinnedItem) error {
	query := `
		INSERT INTO pinned_items (content_id, display_order, pinned_by, pinned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (content_id) DO UPDATE
		SET display_order = EXCLUDED.display_order, pinned_by = EXCLUDED.pinned_by, pinned_at = EXCLUDED.pinned_at
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, pin.ContentID, pin.DisplayOrder, pin.PinnedBy, pin.PinnedAt).Scan(&pin.ID)
}

func (r *pinnedItemRepository) DeleteByContentID(ctx context.Context, contentID string) error {
	query := `DELETE FROM pinned_items WHERE content_id = $1`
	_, err := r.DB.ExecContext(ctx, query, contentID)
	return err
}

func (r *pinnedItemRepository) ListOrdered(ctx context.Context) ([]*domain.PinnedItem, error) {
	query := `
		SELECT id, content_id, display_order, pinned_by, pinned_at
		FROM pinned_items
		ORDER BY display_order, pinned_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var pins []*domain.PinnedItem
	for rows.Next() {
		pin := &domain.PinnedItem{}
		if err := rows.Scan(&pin.ID, &pin.ContentID, &pin.DisplayOrder, &pin.PinnedBy, &pin.PinnedAt); err != nil {
			return nil, err
		}
		pins = append(pins, pin)
	}
	return pins, rows.Err()
}
