package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"guestwall/internal/domain"
)

func TestFeedRepository_CreateEntry(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO feed_entries`).
		WithArgs("content-1", "post", "Ana", "Parabéns!", true, createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("feed-1"))

	repo := NewFeedRepository(db)
	entry := &domain.FeedEntry{
		ContentID:  "content-1",
		Kind:       domain.ContentKindPost,
		AuthorName: "Ana",
		Preview:    "Parabéns!",
		IsPublic:   true,
		CreatedAt:  createdAt,
	}
	require.NoError(t, repo.CreateEntry(ctx, entry))
	require.Equal(t, "feed-1", entry.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_SetPublic(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE feed_entries SET is_public`).
		WithArgs("content-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Reapplying is idempotent, and a missing entry (0 rows) is fine.
	mock.ExpectExec(`UPDATE feed_entries SET is_public`).
		WithArgs("content-2", true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewFeedRepository(db)
	require.NoError(t, repo.SetPublic(ctx, "content-1", false))
	require.NoError(t, repo.SetPublic(ctx, "content-2", true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_ListPublic(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feed_entries`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT .+ FROM feed_entries`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content_id", "kind", "author_name", "preview", "is_public", "created_at"}).
			AddRow("feed-2", "content-2", "photo", "Bruno", "https://cdn.example/p.jpg", true, createdAt).
			AddRow("feed-1", "content-1", "post", "Ana", "Parabéns!", true, createdAt))

	repo := NewFeedRepository(db)
	entries, total, err := repo.ListPublic(ctx, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, entries, 2)
	require.Equal(t, domain.ContentKindPhoto, entries[0].Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPinnedItemRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	pinnedAt := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO pinned_items`).
		WithArgs("content-1", 1, "admin", pinnedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("pin-1"))

	repo := NewPinnedItemRepository(db)
	pin := &domain.PinnedItem{ContentID: "content-1", DisplayOrder: 1, PinnedBy: "admin", PinnedAt: pinnedAt}
	require.NoError(t, repo.Upsert(ctx, pin))
	require.Equal(t, "pin-1", pin.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPinnedItemRepository_DeleteByContentID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM pinned_items`).
		WithArgs("content-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPinnedItemRepository(db)
	require.NoError(t, repo.DeleteByContentID(ctx, "content-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
