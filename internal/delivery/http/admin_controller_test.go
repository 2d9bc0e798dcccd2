package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestwall/internal/delivery/http/helpers"
	"guestwall/internal/domain"
)

type fakeGuestLister struct {
	guests []*domain.Guest
	err    error
}

func (f *fakeGuestLister) GetByInvitationCode(ctx context.Context, code string) (*domain.Guest, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeGuestLister) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeGuestLister) List(ctx context.Context) ([]*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.guests, nil
}

func newTestAdminController(svc domain.ModerationService) *AdminController {
	return NewAdminController(slog.New(slog.DiscardHandler), svc, &fakeGuestLister{})
}

func TestAdminControllerModerate(t *testing.T) {
	item := &domain.ContentItem{ID: "content-1", Status: domain.StatusApproved, ModeratedBy: "admin"}

	t.Run("approve returns the updated item", func(t *testing.T) {
		svc := &fakeModerationService{item: item}
		ctrl := newTestAdminController(svc)
		req := httptest.NewRequest(http.MethodPost, "/admin/content/content-1/moderate", strings.NewReader(`{"action":"approve"}`))
		req.SetPathValue("contentID", "content-1")
		rec := httptest.NewRecorder()

		ctrl.Moderate(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"content-1"}, svc.moderated)
	})

	t.Run("reject without a reason is a 400", func(t *testing.T) {
		svc := &fakeModerationService{item: item}
		ctrl := newTestAdminController(svc)
		req := httptest.NewRequest(http.MethodPost, "/admin/content/content-1/moderate", strings.NewReader(`{"action":"reject"}`))
		req.SetPathValue("contentID", "content-1")
		rec := httptest.NewRecorder()

		ctrl.Moderate(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, svc.moderated)
	})

	t.Run("unknown action is a 400", func(t *testing.T) {
		ctrl := newTestAdminController(&fakeModerationService{item: item})
		req := httptest.NewRequest(http.MethodPost, "/admin/content/content-1/moderate", strings.NewReader(`{"action":"escalate"}`))
		req.SetPathValue("contentID", "content-1")
		rec := httptest.NewRecorder()

		ctrl.Moderate(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing item is a 404", func(t *testing.T) {
		ctrl := newTestAdminController(&fakeModerationService{moderateErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodPost, "/admin/content/ghost/moderate", strings.NewReader(`{"action":"approve"}`))
		req.SetPathValue("contentID", "ghost")
		rec := httptest.NewRecorder()

		ctrl.Moderate(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminControllerModerateBatch(t *testing.T) {
	t.Run("reports the count actually updated", func(t *testing.T) {
		svc := &fakeModerationService{batchCount: 2}
		ctrl := newTestAdminController(svc)
		body := `{"action":"reject","ids":["a","b","ghost"],"reason":"spam"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/content/moderate-batch", strings.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.ModerateBatch(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data BatchResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Data.Updated)
	})

	t.Run("empty id list is a 400", func(t *testing.T) {
		ctrl := newTestAdminController(&fakeModerationService{})
		req := httptest.NewRequest(http.MethodPost, "/admin/content/moderate-batch", strings.NewReader(`{"action":"approve","ids":[]}`))
		rec := httptest.NewRecorder()

		ctrl.ModerateBatch(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminControllerListContent(t *testing.T) {
	t.Run("defaults to the pending queue", func(t *testing.T) {
		svc := &fakeModerationService{items: []*domain.ContentItem{{ID: "content-1", Status: domain.StatusPending}}}
		ctrl := newTestAdminController(svc)
		req := httptest.NewRequest(http.MethodGet, "/admin/content", nil)
		rec := httptest.NewRecorder()

		ctrl.ListContent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp helpers.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Nil(t, resp.Error)
	})

	t.Run("unknown status filter is a 400", func(t *testing.T) {
		ctrl := newTestAdminController(&fakeModerationService{listErr: domain.ErrInvalidInput})
		req := httptest.NewRequest(http.MethodGet, "/admin/content?status=archived", nil)
		rec := httptest.NewRecorder()

		ctrl.ListContent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminControllerStats(t *testing.T) {
	svc := &fakeModerationService{stats: &domain.ContentStats{Pending: 3, Approved: 5, Rejected: 1}}
	ctrl := newTestAdminController(svc)
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()

	ctrl.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data domain.ContentStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Pending)
	assert.Equal(t, 5, resp.Data.Approved)
}

func TestAdminControllerPin(t *testing.T) {
	t.Run("pinning an approved item is a 201", func(t *testing.T) {
		svc := &fakeModerationService{pin: &domain.PinnedItem{ID: "pin-1", ContentID: "content-1", DisplayOrder: 1}}
		ctrl := newTestAdminController(svc)
		req := httptest.NewRequest(http.MethodPost, "/admin/pinned", strings.NewReader(`{"content_id":"content-1","display_order":1}`))
		rec := httptest.NewRecorder()

		ctrl.Pin(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("pinning a non-approved item is a 400", func(t *testing.T) {
		ctrl := newTestAdminController(&fakeModerationService{pinErr: domain.ErrNotApproved})
		req := httptest.NewRequest(http.MethodPost, "/admin/pinned", strings.NewReader(`{"content_id":"content-1"}`))
		rec := httptest.NewRecorder()

		ctrl.Pin(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "only approved content can be pinned")
	})

	t.Run("missing content_id is a 400", func(t *testing.T) {
		ctrl := newTestAdminController(&fakeModerationService{})
		req := httptest.NewRequest(http.MethodPost, "/admin/pinned", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		ctrl.Pin(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminControllerUnpin(t *testing.T) {
	svc := &fakeModerationService{}
	ctrl := newTestAdminController(svc)
	req := httptest.NewRequest(http.MethodDelete, "/admin/pinned/content-1", nil)
	req.SetPathValue("contentID", "content-1")
	rec := httptest.NewRecorder()

	ctrl.Unpin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"content-1"}, svc.unpinned)
}

func TestAdminControllerListGuests(t *testing.T) {
	ctrl := NewAdminController(slog.New(slog.DiscardHandler), &fakeModerationService{}, &fakeGuestLister{
		guests: []*domain.Guest{{ID: "guest-1", Name: "Ana", Attending: true}},
	})
	req := httptest.NewRequest(http.MethodGet, "/admin/guests", nil)
	rec := httptest.NewRecorder()

	ctrl.ListGuests(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana")
}
