package domain

import (
	"context"
	"time"
)

// FeedEntry is the activity-feed projection of a content item. IsPublic is
// derived state: it must always equal (item.status == approved) and is
// rewritten in the same logical operation as every status change.
// swagger:model FeedEntry
type FeedEntry struct {
	ID         string      `json:"id"`
	ContentID  string      `json:"content_id"`
	Kind       ContentKind `json:"kind"`
	AuthorName string      `json:"author_name"`
	Preview    string      `json:"preview"`
	IsPublic   bool        `json:"-"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PinnedItem is an admin-curated highlight referencing an approved content
// item. A pin must not outlive its target's approval: rejecting the target
// cascades an unpin.
// swagger:model PinnedItem
type PinnedItem struct {
	ID           string    `json:"id"`
	ContentID    string    `json:"content_id"`
	DisplayOrder int       `json:"display_order"`
	PinnedBy     string    `json:"pinned_by"`
	PinnedAt     time.Time `json:"pinned_at"`
}

// FeedRepository defines storage for feed entries and the visibility
// projection. SetPublic calls are sequenced after the status write they
// mirror; a failed status write never triggers one.
type FeedRepository interface {
	CreateEntry(ctx context.Context, entry *FeedEntry) error
	// SetPublic sets the visibility flag on the entry for a content id.
	// Idempotent; a missing entry is not an error.
	SetPublic(ctx context.Context, contentID string, isPublic bool) error
	ListPublic(ctx context.Context, p PaginationParams) ([]*FeedEntry, int, error)
}

// PinnedItemRepository defines storage for pinned highlights.
type PinnedItemRepository interface {
	// Upsert pins a content item, replacing any existing pin for it.
	Upsert(ctx context.Context, pin *PinnedItem) error
	// DeleteByContentID unpins. Idempotent; missing pins are not an error.
	DeleteByContentID(ctx context.Context, contentID string) error
	ListOrdered(ctx context.Context) ([]*PinnedItem, error)
}
