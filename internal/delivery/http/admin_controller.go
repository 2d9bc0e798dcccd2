package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "guestwall/internal/delivery/http/helpers"
	"guestwall/internal/domain"
)

// adminActor identifies the moderator in audit stamps. The admin gate is a
// single shared secret, so there is exactly one admin identity.
const adminActor = "admin"

// ModerateRequest is the request body for POST /admin/content/{contentID}/moderate
type ModerateRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// Validate implements Validator.
func (m ModerateRequest) Validate() []string {
	var errs []string
	action := domain.ModerationAction(strings.TrimSpace(m.Action))
	if action != domain.ActionApprove && action != domain.ActionReject {
		errs = append(errs, "action must be \"approve\" or \"reject\"")
	}
	if action == domain.ActionReject && strings.TrimSpace(m.Reason) == "" {
		errs = append(errs, "rejection reason is required")
	}
	return errs
}

// ModerateBatchRequest is the request body for POST /admin/content/moderate-batch
type ModerateBatchRequest struct {
	Action string   `json:"action"`
	IDs    []string `json:"ids"`
	Reason string   `json:"reason"`
}

// Validate implements Validator.
func (m ModerateBatchRequest) Validate() []string {
	errs := ModerateRequest{Action: m.Action, Reason: m.Reason}.Validate()
	if len(m.IDs) == 0 {
		errs = append(errs, "ids must not be empty")
	}
	return errs
}

// BatchResult is the response body for batch moderation.
type BatchResult struct {
	Updated int `json:"updated"`
}

// PinRequest is the request body for POST /admin/pinned
type PinRequest struct {
	ContentID    string `json:"content_id"`
	DisplayOrder int    `json:"display_order"`
}

// Validate implements Validator.
func (p PinRequest) Validate() []string {
	if strings.TrimSpace(p.ContentID) == "" {
		return []string{"content_id is required"}
	}
	return nil
}

// ContentListResponse is the response body for GET /admin/content
type ContentListResponse struct {
	Items      []*domain.ContentItem `json:"items"`
	Pagination h.PaginationMeta      `json:"pagination"`
}

type AdminController struct {
	Logger     *slog.Logger
	Moderation domain.ModerationService
	Guests     domain.GuestRepository
}

func NewAdminController(logger *slog.Logger, moderation domain.ModerationService, guests domain.GuestRepository) *AdminController {
	return &AdminController{
		Logger:     logger,
		Moderation: moderation,
		Guests:     guests,
	}
}

// Moderate godoc
// @Summary Approve or reject one content item
// @Description Applies an admin transition. Rejection requires a non-empty reason. Reapplying the current status is a no-op beyond a timestamp refresh. Feed visibility and pins are synced in the same operation.
// @Tags admin
// @Accept json
// @Produce json
// @Param contentID path string true "Content item id"
// @Param body body ModerateRequest true "Action and optional reason"
// @Success 200 {object} helpers.APIResponse "data contains the updated item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/content/{contentID}/moderate [post]
func (c *AdminController) Moderate(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("contentID")
	var req ModerateRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Moderation.Moderate(r.Context(), adminActor, contentID,
		domain.ModerationAction(strings.TrimSpace(req.Action)), req.Reason)
	if err != nil {
		c.writeModerationError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, item)
}

// ModerateBatch godoc
// @Summary Apply one moderation action to many items
// @Description Updates every id that exists and silently skips the rest. Returns the count actually updated.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body ModerateBatchRequest true "Action, ids, optional reason"
// @Success 200 {object} helpers.APIResponse "data contains the updated count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/content/moderate-batch [post]
func (c *AdminController) ModerateBatch(w http.ResponseWriter, r *http.Request) {
	var req ModerateBatchRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	count, err := c.Moderation.ModerateBatch(r.Context(), adminActor, req.IDs,
		domain.ModerationAction(strings.TrimSpace(req.Action)), req.Reason)
	if err != nil {
		c.writeModerationError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BatchResult{Updated: count})
}

func (c *AdminController) writeModerationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "content item not found")
	case errors.Is(err, domain.ErrNotApproved):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "only approved content can be pinned")
	default:
		c.Logger.ErrorContext(r.Context(), "moderation failed", "path", r.URL.Path, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "moderation failed")
	}
}

// ListContent godoc
// @Summary List content items by status
// @Tags admin
// @Produce json
// @Param status query string false "pending (default), approved, or rejected"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/content [get]
func (c *AdminController) ListContent(w http.ResponseWriter, r *http.Request) {
	status := domain.ContentStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.StatusPending
	}
	p := h.ParsePagination(r)
	items, total, err := c.Moderation.ListContent(r.Context(), status, p)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "content listing failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not list content")
		return
	}
	if items == nil {
		items = []*domain.ContentItem{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, ContentListResponse{
		Items:      items,
		Pagination: h.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// Stats godoc
// @Summary Moderation counts per status
// @Tags admin
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains pending/approved/rejected counts"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/stats [get]
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Moderation.Stats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "stats failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not load stats")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, stats)
}

// Pin godoc
// @Summary Pin an approved content item
// @Tags admin
// @Accept json
// @Produce json
// @Param body body PinRequest true "Content id and display order"
// @Success 201 {object} helpers.APIResponse "data contains the pinned item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (including non-approved targets)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/pinned [post]
func (c *AdminController) Pin(w http.ResponseWriter, r *http.Request) {
	var req PinRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	pin, err := c.Moderation.Pin(r.Context(), adminActor, req.ContentID, req.DisplayOrder)
	if err != nil {
		c.writeModerationError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, pin)
}

// Unpin godoc
// @Summary Unpin a content item
// @Description Idempotent: unpinning something that is not pinned succeeds.
// @Tags admin
// @Produce json
// @Param contentID path string true "Content item id"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/pinned/{contentID} [delete]
func (c *AdminController) Unpin(w http.ResponseWriter, r *http.Request) {
	if err := c.Moderation.Unpin(r.Context(), r.PathValue("contentID")); err != nil {
		c.Logger.ErrorContext(r.Context(), "unpin failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "unpin failed")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"unpinned": true})
}

// ListGuests godoc
// @Summary List guest identities
// @Description Read-only view of the imported guest list for the admin dashboard.
// @Tags admin
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains guests"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/guests [get]
func (c *AdminController) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := c.Guests.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "guest listing failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not list guests")
		return
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, guests)
}
