package domain

import (
	"context"
	"time"
)

// ContentKind distinguishes guest-wall posts from photos.
type ContentKind string

const (
	ContentKindPost  ContentKind = "post"
	ContentKindPhoto ContentKind = "photo"
)

// ContentStatus is the moderation state of a content item.
type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
	StatusRejected ContentStatus = "rejected"
)

// ModerationAction is an admin-invoked transition.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReject  ModerationAction = "reject"
)

// StatusFor returns the status a moderation action transitions to.
func (a ModerationAction) StatusFor() ContentStatus {
	if a == ActionReject {
		return StatusRejected
	}
	return StatusApproved
}

// ContentItem is submitted guest content (a wall post or a photo).
// Status is owned exclusively by the moderation service after creation.
// RejectionReason is non-empty iff Status is rejected. SessionID is empty
// for anonymous submissions. Items are never hard-deleted here; photos carry
// a soft IsDeleted flag owned by the media subsystem and read-filtered in
// listings.
// swagger:model ContentItem
type ContentItem struct {
	ID              string        `json:"id"`
	Kind            ContentKind   `json:"kind"`
	AuthorName      string        `json:"author_name"`
	Body            string        `json:"body"`
	MediaURL        string        `json:"media_url,omitempty"`
	Status          ContentStatus `json:"status"`
	ModeratedBy     string        `json:"moderated_by,omitempty"`
	ModeratedAt     *time.Time    `json:"moderated_at,omitempty"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	SessionID       string        `json:"-"`
	IsDeleted       bool          `json:"-"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ContentStats is the per-status item count for the admin dashboard.
// swagger:model ContentStats
type ContentStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// ContentRepository defines storage for content items. Status transitions
// are single conditional updates keyed by id; batch updates apply each id
// independently and report how many rows actually changed.
type ContentRepository interface {
	Create(ctx context.Context, item *ContentItem) error
	GetByID(ctx context.Context, id string) (*ContentItem, error)
	ListByStatus(ctx context.Context, status ContentStatus, p PaginationParams) ([]*ContentItem, int, error)
	// UpdateStatus applies a moderation transition to one item and returns
	// the updated row, or ErrNotFound if the id does not exist.
	UpdateStatus(ctx context.Context, id string, status ContentStatus, moderatedBy, reason string, moderatedAt time.Time) (*ContentItem, error)
	// UpdateStatusBatch applies the same transition to every listed id that
	// exists and returns the ids actually updated.
	UpdateStatusBatch(ctx context.Context, ids []string, status ContentStatus, moderatedBy, reason string, moderatedAt time.Time) ([]string, error)
	Stats(ctx context.Context) (*ContentStats, error)
}

// SubmitInput carries a new content submission into the moderation service.
type SubmitInput struct {
	Kind       ContentKind
	AuthorName string
	Body       string
	MediaURL   string
}

// ModerationService owns the content status state machine and everything
// derived from it (feed visibility, pinned highlights).
type ModerationService interface {
	// Submit creates a content item. The initial status comes from the trust
	// tier of the caller's session: trusted submitters are auto-approved,
	// everyone else lands in pending.
	Submit(ctx context.Context, caller Caller, in SubmitInput) (*ContentItem, error)
	// Moderate applies a single admin transition. Reject requires a
	// non-empty reason. Reapplying the current status is a safe no-op
	// beyond a timestamp refresh.
	Moderate(ctx context.Context, adminID, contentID string, action ModerationAction, reason string) (*ContentItem, error)
	// ModerateBatch applies one action to every id that exists, skipping
	// missing ids silently, and returns the count actually updated.
	ModerateBatch(ctx context.Context, adminID string, ids []string, action ModerationAction, reason string) (int, error)
	ListContent(ctx context.Context, status ContentStatus, p PaginationParams) ([]*ContentItem, int, error)
	Stats(ctx context.Context) (*ContentStats, error)
	Pin(ctx context.Context, adminID, contentID string, displayOrder int) (*PinnedItem, error)
	Unpin(ctx context.Context, contentID string) error
	PublicFeed(ctx context.Context, p PaginationParams) ([]*FeedEntry, int, error)
	PinnedHighlights(ctx context.Context) ([]*PinnedItem, error)
}

// Caller is the identity resolved once per request at the transport
// boundary and passed into the core. A zero Caller is an anonymous
// submitter. The core itself never reads cookies or headers.
type Caller struct {
	SessionID  string
	GuestID    string
	GuestName  string
	AuthMethod AuthMethod
}

// Anonymous reports whether the caller carries no session.
func (c Caller) Anonymous() bool {
	return c.SessionID == ""
}

// TrustTier classifies the caller. Anonymous callers have no auth method
// and classify as untrusted.
func (c Caller) TrustTier() TrustTier {
	if c.Anonymous() {
		return TrustUntrusted
	}
	return TrustTierFor(c.AuthMethod)
}
