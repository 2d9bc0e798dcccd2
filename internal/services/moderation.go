package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"guestwall/internal/domain"
)

const previewLen = 120

type moderationService struct {
	contentRepo domain.ContentRepository
	feedRepo    domain.FeedRepository
	pinnedRepo  domain.PinnedItemRepository
	toucher     domain.SessionToucher
	logger      *slog.Logger
	now         func() time.Time
}

// NewModerationService creates a ModerationService with the given
// repositories. toucher may be nil when submission activity tracking is not
// wanted (e.g. in a CLI import).
func NewModerationService(
	contentRepo domain.ContentRepository,
	feedRepo domain.FeedRepository,
	pinnedRepo domain.PinnedItemRepository,
	toucher domain.SessionToucher,
	logger *slog.Logger,
) domain.ModerationService {
	return &moderationService{
		contentRepo: contentRepo,
		feedRepo:    feedRepo,
		pinnedRepo:  pinnedRepo,
		toucher:     toucher,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *moderationService) Submit(ctx context.Context, caller domain.Caller, in domain.SubmitInput) (*domain.ContentItem, error) {
	if in.Kind != domain.ContentKindPost && in.Kind != domain.ContentKindPhoto {
		return nil, fmt.Errorf("unknown content kind %q: %w", in.Kind, domain.ErrInvalidInput)
	}
	body := strings.TrimSpace(in.Body)
	if in.Kind == domain.ContentKindPost && body == "" {
		return nil, fmt.Errorf("post body is required: %w", domain.ErrInvalidInput)
	}
	if in.Kind == domain.ContentKindPhoto && strings.TrimSpace(in.MediaURL) == "" {
		return nil, fmt.Errorf("media url is required: %w", domain.ErrInvalidInput)
	}

	authorName := strings.TrimSpace(in.AuthorName)
	if authorName == "" {
		authorName = caller.GuestName
	}
	if authorName == "" {
		authorName = domain.DefaultGuestName
	}

	// The only automatic transition in the state machine: trusted callers
	// enter at approved, everyone else at pending.
	status := domain.StatusPending
	if caller.TrustTier() == domain.TrustTrusted {
		status = domain.StatusApproved
	}

	item := &domain.ContentItem{
		Kind:       in.Kind,
		AuthorName: authorName,
		Body:       body,
		MediaURL:   strings.TrimSpace(in.MediaURL),
		Status:     status,
		SessionID:  caller.SessionID,
		CreatedAt:  s.now(),
	}
	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create content item: %w", err)
	}

	entry := &domain.FeedEntry{
		ContentID:  item.ID,
		Kind:       item.Kind,
		AuthorName: item.AuthorName,
		Preview:    preview(item),
		IsPublic:   status == domain.StatusApproved,
		CreatedAt:  item.CreatedAt,
	}
	if err := s.feedRepo.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create feed entry: %w", err)
	}

	if s.toucher != nil && caller.SessionID != "" {
		s.toucher.TouchSession(caller.SessionID)
	}
	return item, nil
}

func preview(item *domain.ContentItem) string {
	text := item.Body
	if item.Kind == domain.ContentKindPhoto && text == "" {
		text = item.MediaURL
	}
	if len(text) > previewLen {
		return text[:previewLen]
	}
	return text
}

func (s *moderationService) Moderate(ctx context.Context, adminID, contentID string, action domain.ModerationAction, reason string) (*domain.ContentItem, error) {
	reason, err := validateAction(action, reason)
	if err != nil {
		return nil, err
	}

	item, err := s.contentRepo.UpdateStatus(ctx, contentID, action.StatusFor(), adminID, reason, s.now())
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update content status: %w", err)
	}

	// The visibility projection runs only after the status write succeeded,
	// within the same logical operation.
	if err := s.projectVisibility(ctx, item.ID, item.Status); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *moderationService) ModerateBatch(ctx context.Context, adminID string, ids []string, action domain.ModerationAction, reason string) (int, error) {
	reason, err := validateAction(action, reason)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("id list is empty: %w", domain.ErrInvalidInput)
	}

	// Missing ids are skipped silently; the returned count is rows actually
	// updated, not rows requested.
	updated, err := s.contentRepo.UpdateStatusBatch(ctx, ids, action.StatusFor(), adminID, reason, s.now())
	if err != nil {
		return 0, fmt.Errorf("batch update content status: %w", err)
	}
	for _, id := range updated {
		if err := s.projectVisibility(ctx, id, action.StatusFor()); err != nil {
			return len(updated), err
		}
	}
	return len(updated), nil
}

func validateAction(action domain.ModerationAction, reason string) (string, error) {
	switch action {
	case domain.ActionApprove:
		return "", nil
	case domain.ActionReject:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return "", domain.ErrReasonRequired
		}
		return reason, nil
	default:
		return "", fmt.Errorf("action %q: %w", action, domain.ErrInvalidAction)
	}
}

// projectVisibility syncs the feed flag for one item and, on rejection,
// cascades an unpin so a pin never outlives its target's approval.
func (s *moderationService) projectVisibility(ctx context.Context, contentID string, status domain.ContentStatus) error {
	if err := s.feedRepo.SetPublic(ctx, contentID, status == domain.StatusApproved); err != nil {
		return fmt.Errorf("sync feed visibility for %s: %w", contentID, err)
	}
	if status == domain.StatusRejected {
		if err := s.pinnedRepo.DeleteByContentID(ctx, contentID); err != nil {
			return fmt.Errorf("cascade unpin for %s: %w", contentID, err)
		}
		s.logger.DebugContext(ctx, "content rejected", "content_id", contentID)
	}
	return nil
}

func (s *moderationService) ListContent(ctx context.Context, status domain.ContentStatus, p domain.PaginationParams) ([]*domain.ContentItem, int, error) {
	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
	default:
		return nil, 0, fmt.Errorf("unknown status %q: %w", status, domain.ErrInvalidInput)
	}
	items, total, err := s.contentRepo.ListByStatus(ctx, status, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list content: %w", err)
	}
	return items, total, nil
}

func (s *moderationService) Stats(ctx context.Context) (*domain.ContentStats, error) {
	stats, err := s.contentRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("content stats: %w", err)
	}
	return stats, nil
}

func (s *moderationService) Pin(ctx context.Context, adminID, contentID string, displayOrder int) (*domain.PinnedItem, error) {
	item, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get content item: %w", err)
	}
	if item.Status != domain.StatusApproved {
		return nil, domain.ErrNotApproved
	}
	pin := &domain.PinnedItem{
		ContentID:    contentID,
		DisplayOrder: displayOrder,
		PinnedBy:     adminID,
		PinnedAt:     s.now(),
	}
	if err := s.pinnedRepo.Upsert(ctx, pin); err != nil {
		return nil, fmt.Errorf("upsert pinned item: %w", err)
	}
	return pin, nil
}

func (s *moderationService) Unpin(ctx context.Context, contentID string) error {
	if err := s.pinnedRepo.DeleteByContentID(ctx, contentID); err != nil {
		return fmt.Errorf("delete pinned item: %w", err)
	}
	return nil
}

func (s *moderationService) PublicFeed(ctx context.Context, p domain.PaginationParams) ([]*domain.FeedEntry, int, error) {
	entries, total, err := s.feedRepo.ListPublic(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list public feed: %w", err)
	}
	return entries, total, nil
}

func (s *moderationService) PinnedHighlights(ctx context.Context) ([]*domain.PinnedItem, error) {
	pins, err := s.pinnedRepo.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pinned items: %w", err)
	}
	return pins, nil
}
